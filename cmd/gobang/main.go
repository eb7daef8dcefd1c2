package main

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
)

/*
Gobang Copyright (C) 2024 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "Gobang"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	// stdout carries the protocol, logs go to stderr
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	var root = Root()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func logVersion() {
	logrus.WithFields(logrus.Fields{
		"VersionName":    versionName,
		"BuildDate":      buildDate,
		"GitRevision":    gitRevision,
		"RuntimeVersion": runtime.Version(),
		"GOARCH":         runtime.GOARCH,
		"GOOS":           runtime.GOOS,
		"NumCPU":         runtime.NumCPU(),
	}).Debug(name, " by ", author)
}
