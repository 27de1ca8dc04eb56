package version

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

// Config describes the running build. An empty Version is filled from the
// module build info, so "go install"ed binaries still report something useful.
type Config struct {
	Name          string
	Version       string
	ServerVersion string
	Formats       []string
}

// Info is the body of GET /version.
type Info struct {
	Name          string   `json:"name,omitempty"`
	Version       string   `json:"version"`
	ServerVersion string   `json:"server_version,omitempty"`
	GoVersion     string   `json:"go_version,omitempty"`
	Formats       []string `json:"credential_formats,omitempty"`
}

var readBuildInfo = debug.ReadBuildInfo

// Register serves the build description at GET /version.
func Register(r router, cfg Config) Info {
	info := Info{
		Name:          cfg.Name,
		Version:       cfg.Version,
		ServerVersion: cfg.ServerVersion,
		Formats:       cfg.Formats,
	}

	if bi, ok := readBuildInfo(); ok {
		info.GoVersion = bi.GoVersion

		if info.Version == "" {
			info.Version = bi.Main.Version
		}
	}

	r.GET("/version", func(e echo.Context) error {
		return e.JSON(http.StatusOK, info)
	})

	return info
}
