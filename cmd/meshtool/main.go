// meshtool is a CLI utility for inspecting OBJ meshes and previewing their animation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/orbitview/internal/engine/model"
	"github.com/Faultbox/orbitview/internal/engine/placement"
	"github.com/Faultbox/orbitview/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "simulate", "sim":
		cmdSimulate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - OBJ mesh utility

Usage:
  meshtool <command> [options]

Commands:
  info <file.obj>                 Show objects, vertex counts and bounds
  simulate [options] <file.obj>   Print the animated placement for a number of frames

Simulate options:
  -frames N    Frames to run (default 10)
  -every N     Print every Nth frame (default 1)
  -object N    Object index within the file (default 0)

Examples:
  meshtool info assets/icosahedron.obj
  meshtool simulate -frames 1000 -every 100 assets/icosahedron.obj`)
}

func readOBJ(path string) *formats.OBJ {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	obj, err := formats.ParseOBJ(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		os.Exit(1)
	}
	return obj
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info <file.obj>")
		os.Exit(1)
	}

	obj := readOBJ(args[0])

	fmt.Printf("File:       %s\n", args[0])
	fmt.Printf("Positions:  %d\n", len(obj.Positions))
	fmt.Printf("Normals:    %d\n", len(obj.Normals))
	fmt.Printf("TexCoords:  %d\n", len(obj.TexCoords))
	fmt.Printf("Triangles:  %d\n", obj.TriangleCount())
	fmt.Println()
	fmt.Println("Objects:")

	for i, o := range obj.Objects {
		name := o.Name
		if name == "" {
			name = "(unnamed)"
		}
		mesh, err := model.FromOBJ(obj, model.BuildOptions{Object: i})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		b := mesh.Bounds()
		fmt.Printf("  [%d] %-20s %6d tris  min(%.3f, %.3f, %.3f) max(%.3f, %.3f, %.3f)\n",
			i, name, len(o.Triangles),
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	frames := fs.Int("frames", 10, "Frames to run")
	every := fs.Int("every", 1, "Print every Nth frame")
	object := fs.Int("object", 0, "Object index")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool simulate [options] <file.obj>")
		os.Exit(1)
	}
	if *every < 1 {
		*every = 1
	}

	obj := readOBJ(fs.Arg(0))
	mesh, err := model.FromOBJ(obj, model.BuildOptions{NormalizePositions: true, Object: *object})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	solver := placement.NewSolver(placement.DefaultParams())
	fmt.Printf("%6s %9s %9s %9s %9s %9s\n", "frame", "orbit", "spin", "x", "z", "min y")

	for i := 0; i < *frames; i++ {
		clock := solver.Clock()
		pos := solver.OrbitPosition()
		out, err := solver.Advance(mesh.Vertices)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if i%*every != 0 {
			continue
		}
		b := (&model.Mesh{Vertices: out}).Bounds()
		fmt.Printf("%6d %9.3f %9.3f %9.3f %9.3f %9.4f\n",
			i, clock.Orbit, clock.Spin, pos.X, pos.Z, b.Min.Y)
	}
}
