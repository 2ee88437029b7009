package registry

// Domains lists all domains hosted under [Zone].
//
// If you want to add your own, this is where you should do it!
// Please make sure to keep this sorted by name. Each name may appear only once.
//
//nolint:gochecknoglobals
var Domains = Registry{
	{Name: "wolf", CNAME: "cc-wolf-os.github.io"},
	{Name: "www", CNAME: "madefor.cc"},
}
