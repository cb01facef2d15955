package bootstrap

import (
	"ecommerce-backend/internal/infra/gateway"
	"ecommerce-backend/internal/pkg/config"
	"ecommerce-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return gateway.NewMercadoPagoGateway(cfg.MercadoPago, cfg.Server.Env)
}
