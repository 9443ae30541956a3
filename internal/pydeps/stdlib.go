// SPDX-License-Identifier: MPL-2.0

package pydeps

// standardLibrary is the closed set of module names treated as part of
// the Python runtime and therefore never externally installable.
var standardLibrary = map[string]struct{}{
	"os": {}, "sys": {}, "re": {}, "math": {}, "json": {}, "time": {},
	"datetime": {}, "random": {}, "collections": {}, "itertools": {},
	"functools": {}, "pathlib": {}, "subprocess": {}, "typing": {},
	"abc": {}, "argparse": {}, "enum": {}, "logging": {}, "io": {},
	"csv": {}, "__future__": {}, "site": {}, "threading": {},
	"importlib": {}, "runpy": {}, "asyncio": {}, "base64": {},
	"calendar": {}, "contextlib": {}, "copy": {}, "dataclasses": {},
	"decimal": {}, "difflib": {}, "email": {}, "hashlib": {}, "html": {},
	"http": {}, "inspect": {}, "ipaddress": {}, "multiprocessing": {},
	"operator": {}, "platform": {}, "pprint": {}, "queue": {},
	"shutil": {}, "signal": {}, "socket": {}, "sqlite3": {}, "ssl": {},
	"statistics": {}, "string": {}, "struct": {}, "tempfile": {},
	"textwrap": {}, "unittest": {}, "urllib": {}, "uuid": {},
	"warnings": {}, "xml": {}, "zipfile": {}, "zlib": {}, "builtins": {},
	"codecs": {}, "traceback": {}, "pickle": {}, "gzip": {}, "array": {},
	"bisect": {}, "configparser": {}, "context": {}, "ctypes": {},
	"distutils": {}, "fnmatch": {}, "fractions": {}, "ftplib": {},
	"getpass": {}, "gettext": {}, "glob": {}, "heapq": {}, "imp": {},
	"keyword": {}, "marshal": {}, "mimetypes": {}, "numbers": {},
	"optparse": {}, "posixpath": {}, "profile": {}, "pwd": {},
	"shelve": {}, "smtplib": {}, "symtable": {}, "sysconfig": {},
	"tarfile": {}, "telnetlib": {}, "token": {}, "turtle": {}, "uu": {},
	"weakref": {}, "winreg": {},
}

// IsStandardLibrary reports whether name belongs to the Python standard
// library table.
func IsStandardLibrary(name string) bool {
	_, ok := standardLibrary[name]
	return ok
}
