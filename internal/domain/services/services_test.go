package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"secret-server/internal/domain/entities"
)

// testEnv wires the finder stack against an in-memory database so tests
// can execute the queries the services compose.
type testEnv struct {
	db          *gorm.DB
	groups      *GroupService
	permissions *PermissionService
	folders     *FolderFilter
	finder      *ResourceFinder
	resources   *ResourceService
	metadata    *MetadataService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access pool: %v", err)
	}
	// A single connection keeps every session on the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Profile{},
		&entities.Avatar{},
		&entities.Group{},
		&entities.GroupUser{},
		&entities.ResourceType{},
		&entities.MetadataKey{},
		&entities.Resource{},
		&entities.Secret{},
		&entities.Permission{},
		&entities.Favorite{},
		&entities.FolderRelation{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T, features FeatureToggles, extensions ...QueryExtension) *testEnv {
	t.Helper()

	db := newTestDB(t)
	groups := NewGroupService(db)
	permissions := NewPermissionService(db, groups)
	folders := NewFolderFilter(db)
	finder := NewResourceFinder(db, permissions, folders, features, extensions...)

	return &testEnv{
		db:          db,
		groups:      groups,
		permissions: permissions,
		folders:     folders,
		finder:      finder,
		resources:   NewResourceService(finder, features),
		metadata:    NewMetadataService(db),
	}
}

func allFeatures() FeatureToggles {
	return FeatureToggles{FoldersEnabled: true, ResourceTypesEnabled: true}
}

func seedUser(t *testing.T, db *gorm.DB) *entities.User {
	t.Helper()
	user := &entities.User{
		ID:           uuid.NewString(),
		Username:     fmt.Sprintf("%s@example.test", uuid.NewString()),
		PasswordHash: "irrelevant",
		Active:       true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedGroup(t *testing.T, db *gorm.DB, name string) *entities.Group {
	t.Helper()
	group := &entities.Group{ID: uuid.NewString(), Name: name}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}
	return group
}

func seedMembership(t *testing.T, db *gorm.DB, groupID, userID string) {
	t.Helper()
	membership := &entities.GroupUser{ID: uuid.NewString(), GroupID: groupID, UserID: userID}
	if err := db.Create(membership).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}
}

func seedResource(t *testing.T, db *gorm.DB, creator *entities.User, name string) *entities.Resource {
	t.Helper()
	resource := &entities.Resource{
		ID:         uuid.NewString(),
		Name:       name,
		CreatedBy:  creator.ID,
		ModifiedBy: creator.ID,
	}
	if err := db.Create(resource).Error; err != nil {
		t.Fatalf("seed resource: %v", err)
	}
	return resource
}

func seedPermission(t *testing.T, db *gorm.DB, acoID, aro, aroID string, level entities.PermissionType) {
	t.Helper()
	permission := &entities.Permission{
		ID:            uuid.NewString(),
		ACO:           entities.ACOResource,
		ACOForeignKey: acoID,
		ARO:           aro,
		AROForeignKey: aroID,
		Type:          level,
	}
	if err := db.Create(permission).Error; err != nil {
		t.Fatalf("seed permission: %v", err)
	}
}

func seedFavorite(t *testing.T, db *gorm.DB, userID, resourceID string) {
	t.Helper()
	favorite := &entities.Favorite{
		ID:           uuid.NewString(),
		UserID:       userID,
		ForeignKey:   resourceID,
		ForeignModel: entities.ACOResource,
	}
	if err := db.Create(favorite).Error; err != nil {
		t.Fatalf("seed favorite: %v", err)
	}
}

func seedFolderRelation(t *testing.T, db *gorm.DB, userID, resourceID string, parentID *string) {
	t.Helper()
	relation := &entities.FolderRelation{
		ID:             uuid.NewString(),
		ForeignKey:     resourceID,
		ForeignModel:   entities.ACOResource,
		UserID:         userID,
		FolderParentID: parentID,
	}
	if err := db.Create(relation).Error; err != nil {
		t.Fatalf("seed folder relation: %v", err)
	}
}

func seedMetadataKey(t *testing.T, db *gorm.DB, expired *time.Time) *entities.MetadataKey {
	t.Helper()
	key := &entities.MetadataKey{
		ID:          uuid.NewString(),
		Fingerprint: "0C1D1761110D1E33C9006D1A5B1B332ED06426D3",
		ArmoredKey:  "-----BEGIN PGP PUBLIC KEY BLOCK-----",
		Expired:     expired,
	}
	if err := db.Create(key).Error; err != nil {
		t.Fatalf("seed metadata key: %v", err)
	}
	return key
}

// encryptMetadata flips a resource to the v5 format bound to the given key.
func encryptMetadata(t *testing.T, db *gorm.DB, resourceID, keyID, keyType string) {
	t.Helper()
	updates := map[string]any{
		"metadata":          "ewogICJvYmplY3RfdHlwZSI6ICJQQVNTQk9MVF9SRVNPVVJDRV9NRVRBREFUQSIK",
		"metadata_key_id":   keyID,
		"metadata_key_type": keyType,
	}
	if err := db.Model(&entities.Resource{}).Where("id = ?", resourceID).Updates(updates).Error; err != nil {
		t.Fatalf("encrypt metadata: %v", err)
	}
}

func markDeleted(t *testing.T, db *gorm.DB, resourceID string) {
	t.Helper()
	if err := db.Model(&entities.Resource{}).Where("id = ?", resourceID).Update("deleted", true).Error; err != nil {
		t.Fatalf("mark deleted: %v", err)
	}
}

// queryIDs runs a composed query and collects the matched resource ids.
func queryIDs(t *testing.T, q *gorm.DB) map[string]bool {
	t.Helper()
	var ids []string
	if err := q.Pluck("resources.id", &ids).Error; err != nil {
		t.Fatalf("execute query: %v", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
