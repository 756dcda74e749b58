// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

type ICompiler interface {
	Compile(srcDir string) (string, error)
}

type IRecordLoader interface {
	Load(path string, out any) error
}
