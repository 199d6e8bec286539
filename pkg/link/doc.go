// Package link provides transports carrying command frames between the
// rover firmware core and its peers.
package link
