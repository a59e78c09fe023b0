package cli

import "cosx/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Input      string
	Output     string
	Extension  string
	Suite      string
	Closing    string
	Indirect   []string
	NoIndirect bool
	NameFilter string
	Report     string
	Progress   bool
	Summary    bool
	Verbose    bool
	Format     string
	All        bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Input:      f.Input,
		Output:     f.Output,
		Extension:  f.Extension,
		Suite:      f.Suite,
		Closing:    f.Closing,
		Indirect:   f.Indirect,
		NoIndirect: f.NoIndirect,
		NameFilter: f.NameFilter,
		Report:     f.Report,
		Progress:   f.Progress,
		Summary:    f.Summary,
		Verbose:    f.Verbose,
		Format:     f.Format,
		All:        f.All,
	}
}
