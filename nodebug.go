// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug
// +build !debug

package boolpoly

const _DEBUG bool = false

func (b *nodetable) logTable() {}
