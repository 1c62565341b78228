package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
	identityDomain "github.com/allisson/tenantadmin/internal/identity/domain"
	identityService "github.com/allisson/tenantadmin/internal/identity/service"
	appvalidation "github.com/allisson/tenantadmin/internal/validation"
)

// identityUseCase implements IdentityUseCase over a SubjectRepository.
type identityUseCase struct {
	subjectRepo       SubjectRepository
	credentialService identityService.CredentialService
}

// NewIdentityUseCase creates a new IdentityUseCase with the provided dependencies.
func NewIdentityUseCase(
	subjectRepo SubjectRepository,
	credentialService identityService.CredentialService,
) IdentityUseCase {
	return &identityUseCase{
		subjectRepo:       subjectRepo,
		credentialService: credentialService,
	}
}

// Create issues or rotates a namespace credential. All input validation
// happens before any store access; with GenOnly the store is never touched.
func (u *identityUseCase) Create(
	ctx context.Context,
	input *CreateIdentityInput,
) (identityService.Credentials, error) {
	subject := strings.TrimSpace(input.Subject)
	if err := validation.Validate(subject, validation.Required, validation.RuneLength(5, 0)); err != nil {
		return identityService.Credentials{}, appvalidation.WrapValidationError(err)
	}

	namespace, err := resolveNamespace(subject, input.Namespace)
	if err != nil {
		return identityService.Credentials{}, err
	}

	var creds identityService.Credentials
	if input.AuthKey != "" {
		creds, err = u.credentialService.Validate(input.AuthKey)
	} else {
		creds, err = u.credentialService.Generate()
	}
	if err != nil {
		return identityService.Credentials{}, err
	}

	if input.GenOnly {
		return creds, nil
	}

	doc, err := u.subjectRepo.Get(ctx, subject)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		doc = identityDomain.NewSubject(subject)
	} else if err != nil {
		return identityService.Credentials{}, err
	}

	if err := doc.AddOrRotateNamespace(namespace, creds.UUID, creds.Key, input.Revoke); err != nil {
		return identityService.Credentials{}, err
	}

	if _, err := u.subjectRepo.Save(ctx, doc); err != nil {
		return identityService.Credentials{}, err
	}
	return creds, nil
}

// Get returns the subject's bindings, all of them or exactly one.
func (u *identityUseCase) Get(
	ctx context.Context,
	subject, namespace string,
	all bool,
) ([]identityDomain.Namespace, error) {
	doc, err := u.subjectRepo.Get(ctx, subject)
	if err != nil {
		return nil, err
	}

	if all {
		return doc.Namespaces, nil
	}

	target := namespace
	if target == "" {
		target = subject
	}
	ns, err := doc.Namespace(target)
	if err != nil {
		return nil, err
	}
	return []identityDomain.Namespace{ns}, nil
}

// Delete removes the whole subject document, or one namespace binding when a
// namespace is given.
func (u *identityUseCase) Delete(ctx context.Context, subject, namespace string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "subject must not be empty")
	}

	var target string
	if namespace != "" {
		if err := validation.Validate(namespace, appvalidation.NotBlank); err != nil {
			return appvalidation.WrapValidationError(err)
		}
		target = strings.TrimSpace(namespace)
	}

	doc, err := u.subjectRepo.Get(ctx, subject)
	if err != nil {
		return err
	}

	if target == "" {
		return u.subjectRepo.Delete(ctx, doc.ID, doc.Rev)
	}

	if err := doc.RemoveNamespace(target); err != nil {
		return err
	}
	_, err = u.subjectRepo.Save(ctx, doc)
	return err
}

// Whois reverse-resolves a credential pair through the identities view.
func (u *identityUseCase) Whois(ctx context.Context, authKey string) ([]identityDomain.Identity, error) {
	credentialUUID, key, found := strings.Cut(authKey, ":")
	if !found {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "credentials must be of the form uuid:key")
	}
	return u.subjectRepo.Identities(ctx, []string{credentialUUID, key})
}

// List returns the identities bound to a namespace, truncated to pick unless
// all is requested.
func (u *identityUseCase) List(
	ctx context.Context,
	namespace string,
	pick int,
	all bool,
) ([]identityDomain.Identity, error) {
	if pick < 1 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "pick at least 1 identity to show")
	}

	identities, err := u.subjectRepo.Identities(ctx, []string{namespace})
	if err != nil {
		return nil, err
	}

	if !all && len(identities) > pick {
		identities = identities[:pick]
	}
	return identities, nil
}

// SetBlocked processes each subject as an independent read-modify-write unit,
// aggregating failures instead of aborting on the first one.
func (u *identityUseCase) SetBlocked(
	ctx context.Context,
	subjects []string,
	blocked bool,
) []BlockResult {
	var results []BlockResult
	for _, subject := range subjects {
		subject = strings.TrimSpace(subject)
		if subject == "" {
			continue
		}
		results = append(results, BlockResult{
			Subject: subject,
			Err:     u.setBlockedOne(ctx, subject, blocked),
		})
	}
	return results
}

func (u *identityUseCase) setBlockedOne(ctx context.Context, subject string, blocked bool) error {
	doc, err := u.subjectRepo.Get(ctx, subject)
	if err != nil {
		return err
	}
	doc.SetBlocked(blocked)
	_, err = u.subjectRepo.Save(ctx, doc)
	return err
}

// resolveNamespace applies the defaulting rule: an omitted namespace falls
// back to the subject identifier, a given-but-blank one is rejected.
func resolveNamespace(subject, namespace string) (string, error) {
	if namespace == "" {
		return subject, nil
	}
	if err := validation.Validate(namespace, appvalidation.NotBlank); err != nil {
		return "", appvalidation.WrapValidationError(err)
	}
	return strings.TrimSpace(namespace), nil
}
