// Package file provides the filesystem implementation of driven.RecordStore.
//
// Documents live at <root>/<collection>/<name>.<format>, e.g.
// akashic-archives-demo/topics/quantum-computing-entities.json and
// akashic-archives-demo/indexes/domains.json.
//
// Writes go to a hidden temp file in the target directory and are renamed
// into place, so readers never observe a half-written document.
//
// The package also provides Watcher, a driven.ChangeWatcher backed by
// fsnotify that reports document changes under the root.
package file
