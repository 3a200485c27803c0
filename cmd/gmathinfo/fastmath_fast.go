//go:build fastmath

package main

const fastmathEnabled = true
