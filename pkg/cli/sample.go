package cli

import "github.com/khalid-nowaf/narytree/pkg/tree"

// SampleWorld builds the built-in world tree used when no input file is given.
func SampleWorld() *tree.Tree[string] {
	world := tree.New("World")

	europe := world.AddChild("Europe")
	europe.AddChild("Germany").AddChild("Berlin")
	europe.AddChild("France").AddChild("Paris")
	europe.AddChild("Poland")
	europe.AddChild("Austria")

	america := world.AddChild("America")
	northAmerica := america.AddChild("North America")
	northAmerica.AddChild("United States").AddChild("Washington DC")
	northAmerica.AddChild("Canada")
	america.AddChild("South America")

	return world
}
