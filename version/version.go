package version

// Version is overwritten at build time with -ldflags "-X ...version.Version=".
var Version = "version is set by build process"
