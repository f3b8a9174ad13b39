/*
Package descgen builds the JSON descriptors the game loads its shader programs and textures from.

A program descriptor names the vertex and fragment shader sources of a program together with
the uniforms and attributes the renderer binds. A texture descriptor names the image file
of a texture, the texture unit it is bound to and its wrap modes.

The package backs two command line tools:

	$ program-gen --example
	$ texture-gen textures/wood.png textures/moon.png

In case you wish to generate the descriptors from your own tooling here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/rhythmrunner/descgen"
	)

	func main() {
		tex := descgen.NewTexture("textures/wood.png")
		if _, err := tex.WriteFile("assets/textures"); err != nil {
			log.Fatalf("Error writing the texture descriptor: %v", err)
		}
		if err := descgen.NewProgram("bunny_prog").Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
*/
package descgen
