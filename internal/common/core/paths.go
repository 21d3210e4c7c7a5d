package core

import "strings"

// Inventory paths address objects by their place in the vCenter folder
// tree, like "/<datacenter>/vm/<folder>/<name>". Callers hand us folder
// paths in several spellings (absolute, relative, with or without the
// datacenter prefix), so everything is normalized before it reaches the
// finder.

// VMFolderPath returns the fully qualified inventory path of a VM folder
// inside the given datacenter. Relative paths are anchored under the
// datacenter's vm root; already qualified paths pass through unchanged.
func VMFolderPath(folder, datacenter string) string {
	return qualifiedFolderPath(folder, datacenter, "vm")
}

func qualifiedFolderPath(folder, datacenter, folderType string) string {
	folder = strings.Trim(folder, "/")
	prefix := datacenter + "/" + folderType
	if folder == "" {
		return "/" + prefix
	}
	if folder == prefix || strings.HasPrefix(folder, prefix+"/") {
		return "/" + folder
	}
	return "/" + prefix + "/" + folder
}

// JoinInventoryPath appends a leaf object name to a folder path.
func JoinInventoryPath(folderPath, name string) string {
	return strings.TrimSuffix(folderPath, "/") + "/" + name
}
