// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug
// +build debug

package boolpoly

import (
	log "github.com/sirupsen/logrus"
)

const _DEBUG bool = true

func init() {
	log.SetLevel(log.DebugLevel)
}

// logTable dumps the content of the node table.
func (b *nodetable) logTable() {
	for k, n := range b.nodes {
		log.Debugf("%-3d (%-3d ? %-3d : %-3d)", k, n.level, n.high, n.low)
	}
}
