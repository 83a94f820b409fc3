package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644
)

// File extension constants for downloaded CAPTCHA challenge images.
const (
	ExtensionJPEG = ".jpg"
	ExtensionPNG  = ".png"
	ExtensionGIF  = ".gif"
	ExtensionBin  = ".bin"
)
