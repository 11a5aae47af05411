package git

// BranchFunc returns the short name of the currently checked out branch.
// Hook policies depend on this instead of on git directly.
type BranchFunc func() (string, error)

// RefPair is one ref update from the pre-push protocol, reduced to short
// branch names.
type RefPair struct {
	Local     string
	LocalSHA  string
	Remote    string
	RemoteSHA string
}
