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

	"github.com/pkg/errors"
	"github.com/rabbitstack/winguard/pkg/com"
	"github.com/rabbitstack/winguard/pkg/sys"
	"github.com/spf13/cobra"
	"golang.org/x/sys/windows"
)

var clsidCmd = &cobra.Command{
	Use:   "clsid [prog-id]",
	Short: "Resolve the CLSID registered for a ProgID",
	Args:  cobra.ExactArgs(1),
	RunE:  resolveClsid,
}

var guidCmd = &cobra.Command{
	Use:   "guid",
	Short: "Generate a fresh GUID",
	RunE:  newGUID,
}

func init() {
	RootCmd.AddCommand(clsidCmd)
	RootCmd.AddCommand(guidCmd)
}

func resolveClsid(cmd *cobra.Command, args []string) error {
	guard, err := com.Initialize(sys.CoinitApartmentThreaded | sys.CoinitDisableOle1DDE)
	if err != nil {
		return errors.Wrap(err, "couldn't initialize the COM library")
	}
	defer guard.Release()

	id := args[0]

	var clsid windows.GUID
	if strings.HasPrefix(id, "{") {
		clsid, err = com.CLSIDFromString(id)
	} else {
		clsid, err = com.CLSIDFromProgID(id)
	}
	if err != nil {
		return errors.Wrapf(err, "couldn't resolve the CLSID for %s", id)
	}

	s, err := com.StringFromCLSID(&clsid)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, s)

	return nil
}

func newGUID(cmd *cobra.Command, args []string) error {
	guid, err := com.CreateGUID()
	if err != nil {
		return errors.Wrap(err, "couldn't generate the GUID")
	}
	s, err := com.StringFromCLSID(&guid)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, s)

	return nil
}
