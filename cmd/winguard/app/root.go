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
	"errors"
	"runtime"

	"github.com/rabbitstack/winguard/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logConfig log.Config

// RootCmd is the entrance to winguard CLI
var RootCmd = &cobra.Command{
	Use:   "winguard",
	Short: "Safe handle and COM lifetime management for Windows",
	Long: `
	Winguard wraps raw Windows handles, file mapping views and COM
	interface references behind typed owners with explicit, single-shot
	disposal. The CLI exposes a few of those building blocks directly:
	mapping files into memory, resolving CLSIDs from ProgIDs and
	generating fresh GUIDs.
	`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if runtime.GOOS != "windows" {
			return errors.New("winguard can only be run on Windows operating systems")
		}
		if runtime.GOARCH == "386" {
			return errors.New("winguard can't be run on 32-bits Windows operating systems")
		}
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		logConfig.InitFromViper(viper.GetViper())
		return log.InitFromConfig(logConfig, "winguard.log")
	},
}

func init() {
	logConfig.AddFlags(RootCmd.PersistentFlags())

	RootCmd.AddCommand(versionCmd)
}
