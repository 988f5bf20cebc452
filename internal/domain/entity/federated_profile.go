package entity

// FederatedProfile is the provider-neutral view of an identity provider's user payload.
// It is rebuilt on every federated login and folded into a Member right away.
type FederatedProfile struct {
	Provider    Provider
	Username    string // Provider-assigned id, used as the member subject.
	DisplayName string
	Email       string // Empty for providers that do not share it.
	AvatarURL   string
}
