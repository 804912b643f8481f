package firewall

import (
	"fmt"
	"os/exec"
	"strings"
)

// IPTables mutates the host packet filter by shelling out to iptables and
// ipset. All operations require root.
type IPTables struct{}

func NewIPTables() *IPTables { return &IPTables{} }

func (ipt *IPTables) Flush(table string) error {
	return run("iptables", "-t", table, "-F")
}

func (ipt *IPTables) DeleteChains(table string) error {
	return run("iptables", "-t", table, "-X")
}

func (ipt *IPTables) SetPolicy(chain, action string) error {
	return run("iptables", "-P", chain, action)
}

func (ipt *IPTables) DestroySets() error {
	return run("ipset", "destroy")
}

func run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s failed: %s: %w", name, strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return nil
}
