package explorer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// Serve exposes the loaded traces over HTTP
func (e *Explorer) Serve(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/traces", e.handleTraces)
	r.GET("/traces/:episode", e.handleTrace)
	r.GET("/traces/:episode/costs", e.handleCosts)
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return server.ListenAndServe()
}

func (e *Explorer) handleTraces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"traces": e.Summaries()})
}

func (e *Explorer) handleTrace(c *gin.Context) {
	episode, err := strconv.Atoi(c.Param("episode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "episode must be an integer"})
		return
	}
	trace, ok := e.Trace(episode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no trace for episode"})
		return
	}
	c.JSON(http.StatusOK, trace)
}

func (e *Explorer) handleCosts(c *gin.Context) {
	episode, err := strconv.Atoi(c.Param("episode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "episode must be an integer"})
		return
	}
	trace, ok := e.Trace(episode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no trace for episode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"costs": trace.Costs()})
}

func ExplorerCommand() *cobra.Command {
	var tracesFile string
	var addr string

	cmd := &cobra.Command{
		Use:   "explorer",
		Short: "Serve recorded episode traces over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := NewExplorer(tracesFile)
			if err != nil {
				return err
			}
			return e.Serve(addr)
		},
	}
	cmd.PersistentFlags().StringVarP(&tracesFile, "traces", "t", "", "Path to the recorded traces jsonl file")
	cmd.PersistentFlags().StringVar(&addr, "addr", "localhost:8080", "Address to serve on")
	cmd.MarkPersistentFlagRequired("traces")
	return cmd
}
