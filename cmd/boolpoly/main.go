// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command boolpoly computes with Boolean polynomials given on the command
// line, for instance:
//
//	boolpoly --names x,y,z --order dlex lead "x*y + z + 1"
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Debugf("%+v", err)
		os.Exit(1)
	}
}
