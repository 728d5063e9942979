// This file is part of Farmem.
//
// Farmem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Farmem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Farmem.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the name of the resource directory when it is in the current directory
const localResourcePath = ".farmem"

// the name of the resource directory when it is in the user config directory
const configResourcePath = "farmem"

// ResourcePath returns the path to the resource file in the sub-path of the
// resource directory. Either subPth or file can be empty. The directory
// (but not the file) is created if it does not exist.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(localResourcePath); err == nil {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourcePath), nil
}
