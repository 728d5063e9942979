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

// Package paths contains functions to prepare paths to farmem resources.
//
// The ResourcePath() function returns the path to a resource file, creating
// the directory containing it if necessary. For example, the path to the
// preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// If a directory named ".farmem" is present in the current working directory
// then that is the base path. Otherwise the user's config directory is used,
// as returned by os.UserConfigDir(). On a modern Linux system the example
// above will return:
//
//	/home/user/.config/farmem/preferences
package paths
