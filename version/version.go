package version

// Version is the current release of repodoc.
// Overridden at build time with -ldflags "-X ...version.Version=x.y.z".
var Version = "0.3.0"
