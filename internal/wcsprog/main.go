// Public domain.

// Package wcsprog holds the main function of the wcsinfo command.
package wcsprog

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"

	"github.com/soniakeys/fitswcs"
)

const versionString = "wcsinfo version 0.1 Go source."
const copyrightString = "Public domain."

// blockSize is the FITS block size.  A primary header is a whole
// number of blocks, each holding 36 card images.
const blockSize = 2880

func usage() {
	os.Stderr.WriteString(`Usage: wcsinfo [options] <fitsfile>  Resolve WCS of a FITS primary header.
       wcsinfo [options] -          Resolve WCS from stdin.
       wcsinfo -v                   Display version and copyright.

Options:
     -r    input is a bare header dump, not a FITS file
`)
	os.Exit(1)
}

func Main() {
	defer exit.Handler()
	v := flag.Bool("v", false, "")
	raw := flag.Bool("r", false, "")
	flag.Usage = usage
	flag.Parse()
	if *v {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		usage()
	}

	f := os.Stdin
	if fn := flag.Arg(0); fn != "-" {
		var err error
		if f, err = os.Open(fn); err != nil {
			exit.Log(err)
		}
		defer f.Close()
	}

	hdr, err := readHeader(f, *raw)
	if err != nil {
		exit.Log(err)
	}
	w, err := fitswcs.Resolve(hdr)
	if err != nil {
		exit.Log(err)
	}

	fmt.Println("Frame:     ", w.Frame)
	fmt.Println("Projection:", w.Proj.Name())
	c := w.Proj.ProjCenter()
	fmt.Printf("Center:     %v  %v\n", sexa.FmtAngle(c.Lon), sexa.FmtAngle(c.Lat))
	if w.Sip != nil {
		fmt.Printf("SIP:        order %d/%d, inverse %t, u [%g, %g], v [%g, %g]\n",
			w.Sip.A.Order, w.Sip.B.Order, w.Sip.Inverse(),
			w.Sip.UMin, w.Sip.UMax, w.Sip.VMin, w.Sip.VMax)
	}
}

// readHeader returns the raw text of the primary header.  In raw mode
// the whole input is the header.  Otherwise input is read in FITS
// blocks until the block holding the END card.
func readHeader(r io.Reader, raw bool) (string, error) {
	if raw {
		b, err := io.ReadAll(r)
		return string(b), err
	}
	var hdr []byte
	buf := make([]byte, blockSize)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		hdr = append(hdr, buf...)
		for i := 0; i < blockSize; i += 80 {
			if string(buf[i:i+8]) == "END     " {
				return string(hdr), nil
			}
		}
	}
}
