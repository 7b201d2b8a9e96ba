// Package rhcos reads the image pullspecs out of a resolved rhcos
// configuration (see assembly.RHCOSConfig).
package rhcos
