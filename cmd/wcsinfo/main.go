// Public domain.

// Command wcsinfo resolves and prints the world coordinate system of
// a FITS image header.
package main

import "github.com/soniakeys/fitswcs/internal/wcsprog"

func main() { wcsprog.Main() }
