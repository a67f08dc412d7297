package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
	"github.com/gestor-financeiro/backend/internal/integration/adapters"
)

func tokenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an access token for a user",
		Long: `Signs an HS256 access token with the shared secret, the way the identity
provider does. Intended for smoke tests and support tooling.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(v.GetString("token.user"))
			if err != nil {
				return fmt.Errorf("--user must be a UUID: %w", err)
			}
			secret := v.GetString("jwt.secret")
			if secret == "" {
				return fmt.Errorf("--secret (or GESTOR_JWT_SECRET) is required")
			}

			role := entity.UserRole(v.GetString("token.role"))
			switch role {
			case entity.UserRoleAdmin, entity.UserRoleOperator, entity.UserRoleViewer:
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			service := adapters.NewTokenService(secret, v.GetString("jwt.issuer"))
			token, err := service.IssueAccessToken(cmd.Context(), entity.CurrentUser{
				ID:    userID,
				Email: v.GetString("token.email"),
				Role:  role,
			}, v.GetDuration("token.ttl"))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("user", "", "user ID placed in the sub claim (required)")
	cmd.Flags().String("email", "", "email claim")
	cmd.Flags().String("role", string(entity.UserRoleViewer), "role claim (admin, operator, viewer)")
	cmd.Flags().Duration("ttl", time.Hour, "token lifetime")
	cmd.Flags().String("secret", "", "HS256 signing secret")
	cmd.Flags().String("issuer", "", "iss claim")

	_ = v.BindPFlag("token.user", cmd.Flags().Lookup("user"))
	_ = v.BindPFlag("token.email", cmd.Flags().Lookup("email"))
	_ = v.BindPFlag("token.role", cmd.Flags().Lookup("role"))
	_ = v.BindPFlag("token.ttl", cmd.Flags().Lookup("ttl"))
	_ = v.BindPFlag("jwt.secret", cmd.Flags().Lookup("secret"))
	_ = v.BindPFlag("jwt.issuer", cmd.Flags().Lookup("issuer"))

	return cmd
}
