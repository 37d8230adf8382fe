package config

// Canned flags for the options nearly every binary declares. Loaders and
// tests use these instead of repeating the short/long spellings.

// HelpFlag returns the conventional help flag (-h / --help).
func HelpFlag() Flag {
	return Flag{Name: "help", Short: 'h', Long: "help"}
}

// VerboseFlag returns the conventional verbosity flag (-V / --verbose).
func VerboseFlag() Flag {
	return Flag{Name: "verbose", Short: 'V', Long: "verbose"}
}

// VersionFlag returns the conventional version flag (-v / --version).
func VersionFlag() Flag {
	return Flag{Name: "version", Short: 'v', Long: "version"}
}

// LicenseFlag returns the conventional license flag (-L / --license).
func LicenseFlag() Flag {
	return Flag{Name: "license", Short: 'L', Long: "license"}
}

// DebugFlag returns the conventional debug flag (-d / --debug).
func DebugFlag() Flag {
	return Flag{Name: "debug", Short: 'd', Long: "debug"}
}
