package web

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tonixchain/brandgen/internal/render"
	"github.com/tonixchain/brandgen/internal/scenes"
	"github.com/tonixchain/brandgen/internal/state"
)

const maxQRCodeSizePx = 2048

// Renderer draws a scene on demand. app.Generator implements it.
type Renderer interface {
	Render(name string, seed int64) (*image.RGBA, error)
}

// StatusSource exposes generation progress. state.Store implements it.
type StatusSource interface {
	Snapshot() state.State
}

type sysLogger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type APIV1Deps struct {
	Renderer Renderer
	Status   StatusSource
	Scenes   []scenes.Scene
	Logger   sysLogger
	// DefaultSeed is used when a render request has no seed parameter.
	DefaultSeed int64
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type statusResponse struct {
	Phase string `json:"phase"`
	state.State
}

type sceneResponse struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	URL      string `json:"url"`
}

// NewRouter builds the preview server:
// - /api/v1/* for the API
// - everything else is served from outDir, where the generator writes
func NewRouter(outDir string, deps APIV1Deps) *gin.Engine {
	if deps.Scenes == nil {
		deps.Scenes = scenes.All()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(deps.Logger))

	api := router.Group("/api/v1")
	{
		api.GET("/status", func(c *gin.Context) { handleStatus(c, deps) })
		api.GET("/scenes", func(c *gin.Context) { handleScenes(c, deps) })
		api.GET("/scenes/:name/image.png", func(c *gin.Context) { handleSceneImage(c, deps) })
		api.GET("/qr", handleQRCode)
	}

	router.NoRoute(outputDirHandler(outDir))
	return router
}

func handleStatus(c *gin.Context, deps APIV1Deps) {
	if deps.Status == nil {
		writeAPIError(c, http.StatusNotImplemented, "not_implemented", "status not configured")
		return
	}
	snap := deps.Status.Snapshot()
	if snap.Assets == nil {
		snap.Assets = []state.AssetInfo{}
	}
	c.JSON(http.StatusOK, statusResponse{Phase: snap.Phase.String(), State: snap})
}

func handleScenes(c *gin.Context, deps APIV1Deps) {
	out := make([]sceneResponse, 0, len(deps.Scenes))
	for _, scene := range deps.Scenes {
		width, height := scene.Size()
		out = append(out, sceneResponse{
			Name:     scene.Name(),
			Filename: scene.Filename(),
			Width:    width,
			Height:   height,
			URL:      "/api/v1/scenes/" + scene.Name() + "/image.png",
		})
	}
	c.JSON(http.StatusOK, out)
}

func handleSceneImage(c *gin.Context, deps APIV1Deps) {
	if deps.Renderer == nil {
		writeAPIError(c, http.StatusNotImplemented, "not_implemented", "renderer not configured")
		return
	}

	seed := deps.DefaultSeed
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeAPIError(c, http.StatusBadRequest, "invalid_seed", "seed must be an integer")
			return
		}
		seed = parsed
	}

	img, err := deps.Renderer.Render(c.Param("name"), seed)
	if err != nil {
		if errors.Is(err, scenes.ErrUnknownScene) {
			writeAPIError(c, http.StatusNotFound, "unknown_scene", err.Error())
			return
		}
		writeAPIError(c, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeAPIError(c, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func handleQRCode(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		writeAPIError(c, http.StatusBadRequest, "missing_text", "text is required")
		return
	}
	size := 0
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxQRCodeSizePx {
			writeAPIError(c, http.StatusBadRequest, "invalid_size", "size must be between 1 and "+strconv.Itoa(maxQRCodeSizePx))
			return
		}
		size = parsed
	}

	data, err := render.EncodeQRCodePNG(text, size)
	if err != nil {
		writeAPIError(c, http.StatusBadRequest, "qr_failed", err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

func outputDirHandler(outDir string) gin.HandlerFunc {
	fileServer := http.FileServer(http.Dir(outDir))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			writeAPIError(c, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
			return
		}
		// Clean path to avoid oddities.
		c.Request.URL.Path = filepath.ToSlash(filepath.Clean("/" + c.Request.URL.Path))
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

func requestLogger(logger sysLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		if logger == nil {
			return
		}
		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			logger.Errorf("web", "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(started))
			return
		}
		logger.Infof("web", "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(started))
	}
}

func writeAPIError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, apiError{Error: code, Message: message})
}
