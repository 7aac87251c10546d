package pets

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ressly/ressly-be/internal/pkg/cloudinary"
	"github.com/ressly/ressly-be/pkg/apperrors"
)

type petStore struct {
	residents map[primitive.ObjectID]bool
	pets      map[primitive.ObjectID]Pet

	insertErr error
}

func newPetStore() *petStore {
	return &petStore{
		residents: map[primitive.ObjectID]bool{},
		pets:      map[primitive.ObjectID]Pet{},
	}
}

func (f *petStore) ResidentExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.residents[id], nil
}

func (f *petStore) InsertPet(_ context.Context, pet *Pet) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if pet.ID.IsZero() {
		pet.ID = primitive.NewObjectID()
	}
	f.pets[pet.ID] = *pet
	return nil
}

func (f *petStore) FindPet(_ context.Context, id primitive.ObjectID) (*Pet, error) {
	if pet, ok := f.pets[id]; ok {
		return &pet, nil
	}
	return nil, nil
}

func (f *petStore) ListByResident(_ context.Context, residentID primitive.ObjectID) ([]Pet, error) {
	var out []Pet
	for _, pet := range f.pets {
		if pet.ResidentID == residentID {
			out = append(out, pet)
		}
	}
	return out, nil
}

func (f *petStore) UpdatePet(_ context.Context, id primitive.ObjectID, input UpdatePetInput) (*Pet, error) {
	pet, ok := f.pets[id]
	if !ok {
		return nil, nil
	}
	pet.Name = input.Name
	pet.Specie = input.Specie
	pet.Breed = input.Breed
	pet.Color = input.Color
	pet.Description = input.Description
	pet.Status = input.Status
	f.pets[id] = pet
	return &pet, nil
}

type petUploader struct {
	fail      bool
	destroyed []string
}

func (f *petUploader) UploadImage(_ context.Context, _ io.Reader, folder cloudinary.Folder) (*cloudinary.UploadResult, error) {
	if f.fail {
		return nil, apperrors.Upload("Error al subir la imagen a Cloudinary", fmt.Errorf("upstream down"))
	}
	return &cloudinary.UploadResult{
		URL:      fmt.Sprintf("https://cdn.example/%s/dog.jpg", folder),
		PublicID: "pets/dog",
	}, nil
}

func (f *petUploader) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func petInput(residentID primitive.ObjectID) CreatePetInput {
	return CreatePetInput{
		ResidentID: residentID,
		Name:       "Firulais",
		Specie:     "Perro",
		Breed:      "Labrador",
		Color:      "Café",
	}
}

func TestCreatePet(t *testing.T) {
	store := newPetStore()
	uploader := &petUploader{}
	svc := NewService(store, uploader)

	owner := primitive.NewObjectID()
	store.residents[owner] = true

	pet, err := svc.Create(context.Background(), petInput(owner), strings.NewReader("img"))
	require.NoError(t, err)
	require.Equal(t, StatusHome, pet.Status)
	require.NotEmpty(t, pet.PhotoURL)
	require.Len(t, store.pets, 1)
}

func TestCreatePet_UnknownOwner(t *testing.T) {
	store := newPetStore()
	uploader := &petUploader{}
	svc := NewService(store, uploader)

	_, err := svc.Create(context.Background(), petInput(primitive.NewObjectID()), strings.NewReader("img"))
	require.Equal(t, "RESIDENT_NOT_FOUND", apperrors.CodeOf(err))
	require.Empty(t, uploader.destroyed)
}

func TestCreatePet_InsertFailureDestroysBlob(t *testing.T) {
	store := newPetStore()
	store.insertErr = fmt.Errorf("write failed")
	uploader := &petUploader{}
	svc := NewService(store, uploader)

	owner := primitive.NewObjectID()
	store.residents[owner] = true

	_, err := svc.Create(context.Background(), petInput(owner), strings.NewReader("img"))
	require.Equal(t, apperrors.KindPersistence, apperrors.KindOf(err))
	require.Equal(t, []string{"pets/dog"}, uploader.destroyed)
}

func TestUpdatePet(t *testing.T) {
	store := newPetStore()
	svc := NewService(store, &petUploader{})

	owner := primitive.NewObjectID()
	store.residents[owner] = true
	created, err := svc.Create(context.Background(), petInput(owner), strings.NewReader("img"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, UpdatePetInput{
		Name:   "Firulais",
		Specie: "Perro",
		Breed:  "Labrador",
		Color:  "Café",
		Status: StatusMissing,
	})
	require.NoError(t, err)
	require.Equal(t, StatusMissing, updated.Status)

	_, err = svc.Update(context.Background(), created.ID, UpdatePetInput{
		Name: "Firulais", Specie: "Perro", Breed: "Labrador", Color: "Café",
		Status: "Perdida",
	})
	require.Equal(t, "INVALID_STATUS", apperrors.CodeOf(err))

	_, err = svc.Update(context.Background(), primitive.NewObjectID(), UpdatePetInput{
		Name: "Firulais", Specie: "Perro", Breed: "Labrador", Color: "Café",
	})
	require.Equal(t, "PET_NOT_FOUND", apperrors.CodeOf(err))
}
