package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	MethodNotAllowed    failure.ErrorCode = "MethodNotAllowed"
	UnknownAction       failure.ErrorCode = "UnknownAction"

	// Auth
	CredentialsMismatch failure.ErrorCode = "CredentialsMismatch"
	EmailAlreadyInUse   failure.ErrorCode = "EmailAlreadyInUse"
	SessionInvalid      failure.ErrorCode = "SessionInvalid"
	SessionMismatch     failure.ErrorCode = "SessionMismatch"

	// Pet
	PetNotFound failure.ErrorCode = "PetNotFound"

	// Trade
	OfferNotFound     failure.ErrorCode = "OfferNotFound"     // Когда оффер не существует или уже не active
	ItemNotInStock    failure.ErrorCode = "ItemNotInStock"    // Предмета нет в инвентаре продавца
	InsufficientFunds failure.ErrorCode = "InsufficientFunds" // Не хватает монет
	NotOfferSeller    failure.ErrorCode = "NotOfferSeller"
	UnknownShopItem   failure.ErrorCode = "UnknownShopItem"
)
