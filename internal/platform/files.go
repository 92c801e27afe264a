package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AndroidAM      = "am"
)

// Command parameters
const (
	WindowsCmdFlag    = "/c"
	AndroidViewAction = "android.intent.action.VIEW"
	AndroidImageMIME  = "image/*"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cmd, err := defaultAppCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// defaultAppCommand builds the command that opens filePath on goos
func defaultAppCommand(goos, filePath string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin:
		return exec.Command(OpenCommand, filePath), nil
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", filePath), nil
	case OSLinux:
		return exec.Command(XDGOpenCommand, filePath), nil
	case OSAndroid:
		return exec.Command(AndroidAM, "start", "-a", AndroidViewAction, "-d", "file://"+filePath, "-t", AndroidImageMIME), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
