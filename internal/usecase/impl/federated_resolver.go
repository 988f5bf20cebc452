package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/domain/service"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// upsertAttempts covers one retry when a concurrent first login created the member meanwhile.
const upsertAttempts = 2

// attributeExtractor maps one provider's user-info schema onto a profile.
type attributeExtractor func(attributes map[string]any) (*entity.FederatedProfile, error)

type federatedResolver struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// FederatedResolverParams holds dependencies for the resolver, injected by Fx.
type FederatedResolverParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewFederatedResolver is the constructor for federatedResolver.
func NewFederatedResolver(params FederatedResolverParams) usecase.FederatedIdentityResolver {
	return &federatedResolver{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (r *federatedResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// extractorFor is the closed provider set. Adding a provider means adding a case here.
func extractorFor(provider entity.Provider) (attributeExtractor, bool) {
	switch provider {
	case entity.ProviderGoogle:
		return extractGoogle, true
	case entity.ProviderKakao:
		return extractKakao, true
	default:
		return nil, false
	}
}

// Resolve builds the profile of provider from its raw attributes.
func (r *federatedResolver) Resolve(provider entity.Provider, attributes map[string]any) (*entity.FederatedProfile, error) {
	extract, ok := extractorFor(provider)
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WrapMessage("provider " + strconv.Quote(provider.String()))
	}
	if attributes == nil {
		return nil, domainerrors.ErrProviderAttributeMissing.WrapMessage("no attributes")
	}

	return extract(attributes)
}

// Google: flat map {sub, name, email, picture}. Only sub is required.
func extractGoogle(attributes map[string]any) (*entity.FederatedProfile, error) {
	sub, ok := stringAttribute(attributes, "sub")
	if !ok {
		return nil, missingAttribute(entity.ProviderGoogle, "sub")
	}
	email, _ := stringAttribute(attributes, "email")
	picture, _ := stringAttribute(attributes, "picture")

	// ID tokens issued without the profile scope carry no name.
	name, ok := stringAttribute(attributes, "name")
	if !ok {
		name = email
	}
	if name == "" {
		name = sub
	}

	return &entity.FederatedProfile{
		Provider:    entity.ProviderGoogle,
		Username:    sub,
		DisplayName: name,
		Email:       email,
		AvatarURL:   picture,
	}, nil
}

// Kakao: numeric id at the top level, profile nested under kakao_account.profile.
// Kakao does not share the email with this service.
func extractKakao(attributes map[string]any) (*entity.FederatedProfile, error) {
	id, ok := idAttribute(attributes["id"])
	if !ok {
		return nil, missingAttribute(entity.ProviderKakao, "id")
	}

	account, _ := attributes["kakao_account"].(map[string]any)
	profile, _ := account["profile"].(map[string]any)

	nickname, ok := stringAttribute(profile, "nickname")
	if !ok {
		return nil, missingAttribute(entity.ProviderKakao, "kakao_account.profile.nickname")
	}
	avatar, _ := stringAttribute(profile, "profile_image_url")

	return &entity.FederatedProfile{
		Provider:    entity.ProviderKakao,
		Username:    id,
		DisplayName: nickname,
		Email:       "",
		AvatarURL:   avatar,
	}, nil
}

func missingAttribute(provider entity.Provider, path string) error {
	return domainerrors.ErrProviderAttributeMissing.WrapMessage(provider.String() + " attribute " + path)
}

// stringAttribute reads a non-empty string. A nil map reads as missing.
func stringAttribute(attributes map[string]any, key string) (string, bool) {
	value, ok := attributes[key].(string)

	return value, ok && value != ""
}

// idAttribute accepts the shapes a numeric id takes after JSON decoding.
func idAttribute(raw any) (string, bool) {
	switch id := raw.(type) {
	case json.Number:
		return id.String(), id != ""
	case float64:
		if id != float64(int64(id)) {
			return "", false
		}

		return strconv.FormatInt(int64(id), 10), true
	case int64:
		return strconv.FormatInt(id, 10), true
	case int:
		return strconv.Itoa(id), true
	case string:
		return id, id != ""
	default:
		return "", false
	}
}

// Upsert creates the member on first login and afterwards only refreshes email and avatar.
// Role and credential of an existing member are never touched.
func (r *federatedResolver) Upsert(ctx context.Context, profile *entity.FederatedProfile) (*entity.Member, error) {
	if profile == nil || profile.Username == "" {
		return nil, domainerrors.ErrProviderAttributeMissing.WrapMessage("profile has no username")
	}

	var (
		member *entity.Member
		err    error
	)
	for attempt := 1; attempt <= upsertAttempts; attempt++ {
		member, err = r.upsertOnce(ctx, profile)
		if !errors.Is(err, domainerrors.ErrEmailDuplicate) {
			break
		}
		r.log(ctx).Info("Federated member created concurrently, retrying upsert",
			slog.String("provider", profile.Provider.String()), slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (r *federatedResolver) upsertOnce(ctx context.Context, profile *entity.FederatedProfile) (*entity.Member, error) {
	var member *entity.Member

	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.MemberRepo()

		existing, err := memberRepo.FindByUsername(ctx, profile.Username)
		if errors.Is(err, repository.ErrMemberNotFound) {
			created, err := r.newFederatedMember(profile)
			if err != nil {
				return err
			}
			if err := memberRepo.Save(ctx, created); err != nil {
				return errors.Wrap(err, "failed to create federated member")
			}
			member = created

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find federated member")
		}

		if existing.Provider != profile.Provider {
			r.log(ctx).Warn("Federated login collides with another account",
				slog.String("provider", profile.Provider.String()),
				slog.String("existingProvider", existing.Provider.String()))

			return domainerrors.ErrFederatedAccountConflict
		}

		if existing.Email == profile.Email && existing.ProfileImg == profile.AvatarURL {
			member = existing

			return nil
		}

		existing.Email = profile.Email
		existing.ProfileImg = profile.AvatarURL
		if err := memberRepo.Save(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update federated member")
		}
		member = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (r *federatedResolver) newFederatedMember(profile *entity.FederatedProfile) (*entity.Member, error) {
	placeholder, err := r.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Join(domainerrors.ErrPasswordHashFailed, err)
	}

	return &entity.Member{
		Username:     profile.Username,
		PasswordHash: placeholder,
		Email:        profile.Email,
		Nickname:     profile.DisplayName,
		ProfileImg:   profile.AvatarURL,
		Role:         entity.RoleMember,
		Provider:     profile.Provider,
	}, nil
}
