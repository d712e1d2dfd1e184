// Package cli implements the command-line interface for texinspect.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/texinspect/internal/vars"
)

// Root defines global CLI flags.
type Root struct{}

// CmdVersion prints build metadata.
type CmdVersion struct{}

// Execute runs the version command.
func (c *CmdVersion) Execute(args []string) error {
	vars.Print()
	return nil
}

// Run parses arguments and executes the selected command.
func Run(args []string) error {
	var root Root

	parser := flags.NewParser(&root, flags.Default)
	parser.Name = filepath.Base(os.Args[0])

	prog := parser.Name
	if _, err := parser.AddCommand(
		"inspect",
		"Parse a DDS/KTX file and print its descriptor",
		fmt.Sprintf(
			`Parse a texture container and print its format and geometry.

Examples:
  %s inspect texture.dds
  %s inspect texture.ktx --yaml`,
			prog, prog,
		),
		&CmdInspect{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"sub",
		"Locate one sub-image and print its byte range and fingerprint",
		fmt.Sprintf(
			`Locate the byte range and geometry of one (array, face/slice, mip)
sub-image within a DDS/KTX file, and print an xxhash fingerprint of its
raw bytes.

Examples:
  %s sub texture.dds --array 0 --face 0 --mip 0
  %s sub cubemap.ktx --face 3 --mip 1`,
			prog, prog,
		),
		&CmdSub{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"batch",
		"Inspect every file listed in a YAML manifest",
		fmt.Sprintf(
			`Run inspect over every file named in a manifest.

Examples:
  %s batch ./textures.yaml
  %s batch ./textures.yaml --only hero_diffuse`,
			prog, prog,
		),
		&CmdBatch{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"version",
		"Print build metadata",
		fmt.Sprintf(
			`Show version information.

Examples:
  %s version`,
			prog,
		),
		&CmdVersion{},
	); err != nil {
		return err
	}

	_, err := parser.ParseArgs(args)

	if err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	return nil
}
