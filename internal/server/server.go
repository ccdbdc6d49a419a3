package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	AuthServer
	PetServer
	TradeServer

	sessions tokenVerifier
}

func NewServer(
	authServer AuthServer,
	petServer PetServer,
	tradeServer TradeServer,
	sessions tokenVerifier,
) Server {
	return Server{
		AuthServer:  authServer,
		PetServer:   petServer,
		TradeServer: tradeServer,
		sessions:    sessions,
	}
}
