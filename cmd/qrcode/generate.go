package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/qrcompose/pkg/qrcode"
)

// DefaultOutputPath is where generate writes when --path is not given.
const DefaultOutputPath = "storage/qrcodes/qrcode.png"

type generateFlags struct {
	path        string
	size        int
	margin      int
	logo        string
	logoSize    int
	logoAlign   string
	logoOffsetX int
	logoOffsetY int
	fg          string
	bg          string
	ecc         string
	base64      bool
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate <data>",
		Short: "Generate a QR code and save it to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}

			a, err := newApp(root)
			if err != nil {
				return err
			}

			out, err := a.Generator().Generate(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}

			if f.base64 {
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "QR code generated and saved to %s\n", out)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.path, "path", DefaultOutputPath, "output file; the directory must exist")
	fl.IntVar(&f.size, "size", 0, "image size in pixels (default from QRCODE_DEFAULT_SIZE)")
	fl.IntVar(&f.margin, "margin", 0, "quiet zone in modules (default from QRCODE_DEFAULT_MARGIN)")
	fl.StringVar(&f.logo, "logo", "", "logo file path or http(s) URL")
	fl.IntVar(&f.logoSize, "logo-size", 0, "logo size in pixels including the white border")
	fl.StringVar(&f.logoAlign, "logo-align", "", "logo alignment: left, center or right")
	fl.IntVar(&f.logoOffsetX, "logo-offset-x", 0, "horizontal logo offset in pixels")
	fl.IntVar(&f.logoOffsetY, "logo-offset-y", 0, "vertical logo offset in pixels")
	fl.StringVar(&f.fg, "fg", "", "foreground color (#rrggbb or r,g,b)")
	fl.StringVar(&f.bg, "bg", "", "background color (#rrggbb or r,g,b)")
	fl.StringVar(&f.ecc, "ecc", "", "error correction level: L, M, Q or H")
	fl.BoolVar(&f.base64, "base64", false, "print a data URI instead of writing a file")

	return cmd
}

// options converts the flags that were set into generator options.
func (f generateFlags) options(cmd *cobra.Command) ([]qrcode.Option, error) {
	changed := cmd.Flags().Changed
	var opts []qrcode.Option

	if changed("size") {
		opts = append(opts, qrcode.WithSize(f.size))
	}
	if changed("margin") {
		opts = append(opts, qrcode.WithMargin(f.margin))
	}
	if f.logo != "" {
		opts = append(opts, qrcode.WithLogo(f.logo))
	}
	if changed("logo-size") {
		opts = append(opts, qrcode.WithLogoSize(f.logoSize))
	}
	if f.logoAlign != "" {
		opts = append(opts, qrcode.WithLogoAlign(qrcode.Align(f.logoAlign)))
	}
	if changed("logo-offset-x") || changed("logo-offset-y") {
		opts = append(opts, qrcode.WithLogoOffset(f.logoOffsetX, f.logoOffsetY))
	}
	if f.fg != "" {
		c, err := qrcode.ParseColor(f.fg)
		if err != nil {
			return nil, fmt.Errorf("--fg: %w", err)
		}
		opts = append(opts, qrcode.WithForegroundColor(c))
	}
	if f.bg != "" {
		c, err := qrcode.ParseColor(f.bg)
		if err != nil {
			return nil, fmt.Errorf("--bg: %w", err)
		}
		opts = append(opts, qrcode.WithBackgroundColor(c))
	}
	if f.ecc != "" {
		opts = append(opts, qrcode.WithErrorCorrection(qrcode.Level(f.ecc)))
	}

	if f.base64 {
		opts = append(opts, qrcode.WithBase64Output())
	} else {
		opts = append(opts, qrcode.WithFileOutput(f.path))
	}
	return opts, nil
}
