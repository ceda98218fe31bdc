package domain

import "path/filepath"

// Candidate is one place an executable may have been written to.
type Candidate struct {
	Dir  string
	Name string
}

// Path returns the full path of the candidate.
func (c Candidate) Path() string {
	return filepath.Join(c.Dir, c.Name)
}

// ConventionalConfigs are the configuration subdirectories probed when no config is given,
// in probe order.
var ConventionalConfigs = []string{"Debug", "Release", "RelWithDebInfo", "MinSizeRel"}
