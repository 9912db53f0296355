package exec

import "maps"

// config holds global settings (set at creation) and local settings (set per
// run, overriding the global ones).
type config struct {
	globalEnv        map[string]string
	globalDir        string
	globalInheritEnv bool

	localEnv        map[string]string
	localDir        string
	localInheritEnv *bool
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone creates a deep copy of the configuration.
func (c *config) clone() *config {
	clone := &config{
		globalEnv:        maps.Clone(c.globalEnv),
		globalDir:        c.globalDir,
		globalInheritEnv: c.globalInheritEnv,
		localEnv:         maps.Clone(c.localEnv),
		localDir:         c.localDir,
	}
	if c.localInheritEnv != nil {
		val := *c.localInheritEnv
		clone.localInheritEnv = &val
	}
	return clone
}

// effectiveEnv merges global and local variables; local wins.
func (c *config) effectiveEnv() map[string]string {
	env := maps.Clone(c.globalEnv)
	maps.Copy(env, c.localEnv)
	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	if c.localInheritEnv != nil {
		return *c.localInheritEnv
	}
	return c.globalInheritEnv
}

// resetLocal clears local settings after a run.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
}
