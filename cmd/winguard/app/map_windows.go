/*
 * Copyright 2022-2023 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/rabbitstack/winguard/pkg/handle"
	"github.com/rabbitstack/winguard/pkg/sys"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/windows"
)

var mapCmd = &cobra.Command{
	Use:   "map [file]",
	Short: "Map a file into memory and dump a slice of the view",
	Args:  cobra.ExactArgs(1),
	RunE:  mapFile,
}

var (
	mapOffset uint64
	mapBytes  int
)

func init() {
	mapCmd.Flags().Uint64Var(&mapOffset, "offset", 0, "offset into the file at which the view starts. Must be a multiple of the allocation granularity")
	mapCmd.Flags().IntVar(&mapBytes, "bytes", 256, "number of bytes dumped from the view")

	RootCmd.AddCommand(mapCmd)
}

func mapFile(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "couldn't open %s", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	size := fi.Size()
	if size == 0 {
		return errors.Errorf("%s is empty. Empty files can't be mapped", path)
	}

	hmap, err := handle.CreateFileMapping(windows.Handle(f.Fd()), windows.PAGE_READONLY, 0, "")
	if err != nil {
		return errors.Wrapf(err, "couldn't create the file mapping for %s", path)
	}
	view, err := hmap.MapView(sys.FileMapRead, mapOffset, 0)
	if err != nil {
		if e := hmap.Close(); e != nil {
			log.Warnf("couldn't close the file mapping handle: %v", e)
		}
		return errors.Wrapf(err, "couldn't map the view at offset %d", mapOffset)
	}

	n := mapBytes
	if remaining := size - int64(mapOffset); int64(n) > remaining {
		n = int(remaining)
	}
	b := view.Bytes(n)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"File", path})
	t.AppendRow(table.Row{"Size", humanize.Bytes(uint64(size))})
	t.AppendRow(table.Row{"Mapping", hmap.String()})
	t.AppendRow(table.Row{"View base", view.String()})
	t.Render()

	t = table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Offset", "Hex", "ASCII"})

	for i := 0; i < len(b); i += 16 {
		row := b[i:min(i+16, len(b))]
		t.AppendRow(table.Row{
			fmt.Sprintf("0x%08x", mapOffset+uint64(i)),
			hexify(row),
			asciify(row),
		})
	}
	t.Render()

	if err := view.Unmap(); err != nil {
		log.Warnf("couldn't unmap the view: %v", err)
	}
	if err := hmap.Close(); err != nil {
		log.Warnf("couldn't close the file mapping handle: %v", err)
	}

	return nil
}

func hexify(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

func asciify(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
