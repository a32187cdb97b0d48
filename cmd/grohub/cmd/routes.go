package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/server"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the registered HTTP routes",
	Run: func(cmd *cobra.Command, args []string) {
		s := server.New()
		s.RegisterRoutes()

		routes := s.E.Routes()
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})
		for _, r := range routes {
			fmt.Printf("%-7s %s\n", r.Method, r.Path)
		}
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
