package symlink

// journal records what a single Apply call created, in creation order
type journal struct {
	links []string
	dirs  []string
}
