package apihelpers

import (
	"fmt"
	"os"
	"sort"

	"github.com/gin-gonic/gin"
)

// WriteRoutesToFile dumps the registered routes, sorted by path, into a text
// file. Only used in debug mode to diff the API surface between versions.
func WriteRoutesToFile(router *gin.Engine, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	routes := router.Routes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	for _, route := range routes {
		if _, err := file.WriteString(fmt.Sprintf("%s\t%s\n", route.Method, route.Path)); err != nil {
			return err
		}
	}
	return nil
}
