package cli

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/texinspect"
)

// CmdInspect parses one texture file and prints its descriptor.
type CmdInspect struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"Path to a .dds or .ktx file" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	YAML bool `long:"yaml" description:"Print the full descriptor as YAML instead of a summary line"`
}

// Execute runs the inspect command.
func (c *CmdInspect) Execute(args []string) error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}

	data, err := os.ReadFile(c.Args.Path)
	if err != nil {
		return fmt.Errorf("read %q: %w", c.Args.Path, err)
	}

	d, err := texinspect.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %q: %w", c.Args.Path, err)
	}

	return printDescriptor(c.Args.Path, d, c.YAML)
}

// descriptorView is the YAML-serializable projection of a Descriptor,
// with the format rendered as its name rather than its numeric value.
type descriptorView struct {
	Path           string `yaml:"path"`
	Format         string `yaml:"format"`
	Compressed     bool   `yaml:"compressed"`
	SRGB           bool   `yaml:"srgb"`
	Alpha          bool   `yaml:"alpha"`
	Cubemap        bool   `yaml:"cubemap"`
	Width          uint32 `yaml:"width"`
	Height         uint32 `yaml:"height"`
	Depth          uint32 `yaml:"depth"`
	MipCount       uint32 `yaml:"mip_count"`
	ArraySize      uint32 `yaml:"array_size"`
	FaceCount      uint32 `yaml:"face_count"`
	Bpp            uint8  `yaml:"bpp"`
	DataOffset     int    `yaml:"data_offset"`
	PayloadSize    int    `yaml:"payload_size"`
	MetadataOffset int    `yaml:"metadata_offset,omitempty"`
	MetadataSize   int    `yaml:"metadata_size,omitempty"`
}

func newDescriptorView(path string, d texinspect.Descriptor) descriptorView {
	return descriptorView{
		Path:           path,
		Format:         texinspect.FormatName(d.Format),
		Compressed:     texinspect.FormatIsCompressed(d.Format),
		SRGB:           d.Flags.Has(texinspect.FlagSRGB),
		Alpha:          d.Flags.Has(texinspect.FlagAlpha),
		Cubemap:        d.Flags.Has(texinspect.FlagCubemap),
		Width:          d.Width,
		Height:         d.Height,
		Depth:          d.Depth,
		MipCount:       d.MipCount,
		ArraySize:      d.ArraySize,
		FaceCount:      d.FaceCount,
		Bpp:            d.Bpp,
		DataOffset:     d.DataOffset,
		PayloadSize:    d.PayloadSize,
		MetadataOffset: d.MetadataOffset,
		MetadataSize:   d.MetadataSize,
	}
}

func printDescriptor(path string, d texinspect.Descriptor, asYAML bool) error {
	view := newDescriptorView(path, d)

	if asYAML {
		out, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshal descriptor: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	fmt.Printf("%s: %s %dx%dx%d mips=%d array=%d faces=%d\n",
		path, view.Format, view.Width, view.Height, view.Depth,
		view.MipCount, view.ArraySize, view.FaceCount)
	return nil
}
