package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/urfave/cli/v2"
)

// generationErrorMessage is the body of every failed feed response.
const generationErrorMessage = "failed to generate product feed"

func (a *App) startServerCommand() *cli.Command {
	return &cli.Command{
		Name:  "start-server",
		Usage: "Serve the feed over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				EnvVars: []string{"FEED_GEN_PORT"},
				Value:   8080,
			},
		},
		Action: func(c *cli.Context) error {
			if err := a.open(); err != nil {
				return err
			}
			port := c.Int("port")
			e := a.newServer()

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGTERM, os.Interrupt)
			defer stop()
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
					e.Logger.Fatal(err)
				}
			}()

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}

func (a *App) newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET(a.config.Server.Endpoint, a.feedHandler)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

// feedHandler writes the body only after the whole feed has been serialized,
// so a failure never leaks a partial document.
func (a *App) feedHandler(c echo.Context) error {
	format := c.QueryParam("format")
	result, err := a.generateFeed(c.Request().Context(), format)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			return c.String(http.StatusBadRequest, err.Error())
		}
		c.Logger().Errorf("failed to generate: endpoint=%s, format=%s, err=%v", a.config.Server.Endpoint, format, err)
		return c.String(http.StatusInternalServerError, generationErrorMessage)
	}
	return c.Blob(http.StatusOK, result.ContentType, []byte(result.Result))
}
