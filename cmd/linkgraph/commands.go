package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkgraph/core"
	"github.com/katalvlaran/linkgraph/network"
)

func newShowNetworkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show_network",
		Short: "List every person in depth-first discovery order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.setup(cmd.Context())
			if err != nil {
				return err
			}
			rep, err := svc.ShowNetwork(cmd.Context())
			if err != nil {
				return err
			}

			return rep.Render(cmd.OutOrStdout())
		},
	}
}

func newShowConnectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show_connections PERSON",
		Short: "Show 1st, 2nd and 3rd degree connections of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.setup(cmd.Context())
			if err != nil {
				return err
			}

			return showConnections(cmd, svc, args[0])
		},
	}
}

func newConnectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect PERSON_1 PERSON_2",
		Short: "Connect two people, then show the first person's connections",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.setup(cmd.Context())
			if err != nil {
				return err
			}

			rep, err := svc.Connect(cmd.Context(), args[0], args[1])
			switch {
			case errors.Is(err, core.ErrEndpointMissing):
				// the connections view follows even when the link was refused
				fmt.Fprintln(cmd.OutOrStdout(), "Not found in the network.")
				return showConnections(cmd, svc, args[0])
			case err != nil:
				return err
			}

			return rep.Render(cmd.OutOrStdout())
		},
	}
}

// showConnections renders the connections of person, or the not-found line.
func showConnections(cmd *cobra.Command, svc *network.Service, person string) error {
	rep, err := svc.ShowConnections(cmd.Context(), person)
	switch {
	case errors.Is(err, network.ErrPersonNotFound):
		fmt.Fprintf(cmd.OutOrStdout(), "Person '%s' not found in the network.\n", person)
		return nil
	case err != nil:
		return err
	}

	return rep.Render(cmd.OutOrStdout())
}
