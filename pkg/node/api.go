package node

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lioia/dense-pagerank/pkg/utils"
)

// NewAPI exposes the node over HTTP:
//
//	POST /pagerank      run a computation
//	GET  /pagerank/:id  fetch a stored run
//	GET  /health        liveness
func (n *Node) NewAPI() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger = utils.Logger()
	e.Use(middleware.Recover())
	e.Use(serverLog)

	e.GET("/health", n.health)
	e.POST("/pagerank", n.createRun)
	e.GET("/pagerank/:id", n.getRun)
	return e
}

func serverLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		utils.ServerLog("%s %s -> %d", c.Request().Method, c.Request().URL.Path, c.Response().Status)
		return err
	}
}

func (n *Node) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "id": n.Id})
}

func (n *Node) createRun(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	report, err := n.Compute(c.Request().Context(), req)
	if err != nil {
		if isClientError(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}

func (n *Node) getRun(c echo.Context) error {
	report, ok := n.Report(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "run not found")
	}
	return c.JSON(http.StatusOK, report)
}
