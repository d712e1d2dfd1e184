package cli

import (
	"fmt"
	"os"

	"github.com/woozymasta/texinspect"
)

// CmdSub locates one sub-image within a DDS/KTX file and prints its byte
// range, geometry, and content fingerprint.
type CmdSub struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"Path to a .dds or .ktx file" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	Array int `long:"array" description:"Array layer index" default:"0"`
	Face  int `long:"face" description:"Cube face (0-5) or depth slice index" default:"0"`
	Mip   int `long:"mip" description:"Mip level index" default:"0"`
}

// Execute runs the sub command.
func (c *CmdSub) Execute(args []string) error {
	data, err := os.ReadFile(c.Args.Path)
	if err != nil {
		return fmt.Errorf("read %q: %w", c.Args.Path, err)
	}

	d, err := texinspect.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %q: %w", c.Args.Path, err)
	}

	sub, err := texinspect.GetSub(d, data, c.Array, c.Face, c.Mip)
	if err != nil {
		return fmt.Errorf("locate sub-image: %w", err)
	}

	fingerprint := texinspect.Fingerprint(data, sub)

	fmt.Printf("%s: array=%d face/slice=%d mip=%d offset=%d size=%d %dx%dx%d row_pitch=%d xxhash=%s\n",
		c.Args.Path, c.Array, c.Face, c.Mip, sub.Offset, sub.Size,
		sub.Width, sub.Height, sub.Depth, sub.RowPitch, fingerprint)

	return nil
}
