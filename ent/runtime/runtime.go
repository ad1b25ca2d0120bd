// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/anzhiyu-c/user-tags/ent/schema"
	"github.com/anzhiyu-c/user-tags/ent/setting"
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/user"
	"github.com/anzhiyu-c/user-tags/ent/usergroup"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	settingMixin := schema.Setting{}.Mixin()
	settingMixinHooks0 := settingMixin[0].Hooks()
	setting.Hooks[0] = settingMixinHooks0[0]
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescConfigKey is the schema descriptor for config_key field.
	settingDescConfigKey := settingFields[0].Descriptor()
	// setting.ConfigKeyValidator is a validator for the "config_key" field. It is called by the builders before save.
	setting.ConfigKeyValidator = func() func(string) error {
		validators := settingDescConfigKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(config_key string) error {
			for _, fn := range fns {
				if err := fn(config_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// settingDescComment is the schema descriptor for comment field.
	settingDescComment := settingFields[2].Descriptor()
	// setting.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	setting.CommentValidator = settingDescComment.Validators[0].(func(string) error)
	// settingDescCreatedAt is the schema descriptor for created_at field.
	settingDescCreatedAt := settingFields[3].Descriptor()
	// setting.DefaultCreatedAt holds the default value on creation for the created_at field.
	setting.DefaultCreatedAt = settingDescCreatedAt.Default.(func() time.Time)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[4].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	taggroupMixin := schema.TagGroup{}.Mixin()
	taggroupMixinHooks0 := taggroupMixin[0].Hooks()
	taggroup.Hooks[0] = taggroupMixinHooks0[0]
	taggroupFields := schema.TagGroup{}.Fields()
	_ = taggroupFields
	// taggroupDescCreatedAt is the schema descriptor for created_at field.
	taggroupDescCreatedAt := taggroupFields[1].Descriptor()
	// taggroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	taggroup.DefaultCreatedAt = taggroupDescCreatedAt.Default.(func() time.Time)
	// taggroupDescUpdatedAt is the schema descriptor for updated_at field.
	taggroupDescUpdatedAt := taggroupFields[2].Descriptor()
	// taggroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	taggroup.DefaultUpdatedAt = taggroupDescUpdatedAt.Default.(func() time.Time)
	// taggroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	taggroup.UpdateDefaultUpdatedAt = taggroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taggroupDescName is the schema descriptor for name field.
	taggroupDescName := taggroupFields[3].Descriptor()
	// taggroup.NameValidator is a validator for the "name" field. It is called by the builders before save.
	taggroup.NameValidator = func() func(string) error {
		validators := taggroupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	taggeditemMixin := schema.TaggedItem{}.Mixin()
	taggeditemMixinHooks0 := taggeditemMixin[0].Hooks()
	taggeditem.Hooks[0] = taggeditemMixinHooks0[0]
	taggeditemFields := schema.TaggedItem{}.Fields()
	_ = taggeditemFields
	// taggeditemDescCreatedAt is the schema descriptor for created_at field.
	taggeditemDescCreatedAt := taggeditemFields[1].Descriptor()
	// taggeditem.DefaultCreatedAt holds the default value on creation for the created_at field.
	taggeditem.DefaultCreatedAt = taggeditemDescCreatedAt.Default.(func() time.Time)
	// taggeditemDescUpdatedAt is the schema descriptor for updated_at field.
	taggeditemDescUpdatedAt := taggeditemFields[2].Descriptor()
	// taggeditem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	taggeditem.DefaultUpdatedAt = taggeditemDescUpdatedAt.Default.(func() time.Time)
	// taggeditem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	taggeditem.UpdateDefaultUpdatedAt = taggeditemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taggeditemDescContentType is the schema descriptor for content_type field.
	taggeditemDescContentType := taggeditemFields[3].Descriptor()
	// taggeditem.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	taggeditem.ContentTypeValidator = func() func(string) error {
		validators := taggeditemDescContentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content_type string) error {
			for _, fn := range fns {
				if err := fn(content_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taggeditemDescObjectID is the schema descriptor for object_id field.
	taggeditemDescObjectID := taggeditemFields[4].Descriptor()
	// taggeditem.ObjectIDValidator is a validator for the "object_id" field. It is called by the builders before save.
	taggeditem.ObjectIDValidator = func() func(string) error {
		validators := taggeditemDescObjectID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(object_id string) error {
			for _, fn := range fns {
				if err := fn(object_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	userMixin := schema.User{}.Mixin()
	userMixinHooks0 := userMixin[0].Hooks()
	user.Hooks[0] = userMixinHooks0[0]
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[2].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[4].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = func() func(string) error {
		validators := userDescPasswordHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(password_hash string) error {
			for _, fn := range fns {
				if err := fn(password_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescNickname is the schema descriptor for nickname field.
	userDescNickname := userFields[5].Descriptor()
	// user.NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	user.NicknameValidator = userDescNickname.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[6].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescStatus is the schema descriptor for status field.
	userDescStatus := userFields[8].Descriptor()
	// user.DefaultStatus holds the default value on creation for the status field.
	user.DefaultStatus = userDescStatus.Default.(int)
	usergroupMixin := schema.UserGroup{}.Mixin()
	usergroupMixinHooks0 := usergroupMixin[0].Hooks()
	usergroup.Hooks[0] = usergroupMixinHooks0[0]
	usergroupFields := schema.UserGroup{}.Fields()
	_ = usergroupFields
	// usergroupDescCreatedAt is the schema descriptor for created_at field.
	usergroupDescCreatedAt := usergroupFields[1].Descriptor()
	// usergroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	usergroup.DefaultCreatedAt = usergroupDescCreatedAt.Default.(func() time.Time)
	// usergroupDescUpdatedAt is the schema descriptor for updated_at field.
	usergroupDescUpdatedAt := usergroupFields[2].Descriptor()
	// usergroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usergroup.DefaultUpdatedAt = usergroupDescUpdatedAt.Default.(func() time.Time)
	// usergroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usergroup.UpdateDefaultUpdatedAt = usergroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usergroupDescName is the schema descriptor for name field.
	usergroupDescName := usergroupFields[3].Descriptor()
	// usergroup.NameValidator is a validator for the "name" field. It is called by the builders before save.
	usergroup.NameValidator = func() func(string) error {
		validators := usergroupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usergroupDescDescription is the schema descriptor for description field.
	usergroupDescDescription := usergroupFields[4].Descriptor()
	// usergroup.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	usergroup.DescriptionValidator = usergroupDescDescription.Validators[0].(func(string) error)
	usertagMixin := schema.UserTag{}.Mixin()
	usertagMixinHooks0 := usertagMixin[0].Hooks()
	usertag.Hooks[0] = usertagMixinHooks0[0]
	usertagFields := schema.UserTag{}.Fields()
	_ = usertagFields
	// usertagDescCreatedAt is the schema descriptor for created_at field.
	usertagDescCreatedAt := usertagFields[1].Descriptor()
	// usertag.DefaultCreatedAt holds the default value on creation for the created_at field.
	usertag.DefaultCreatedAt = usertagDescCreatedAt.Default.(func() time.Time)
	// usertagDescUpdatedAt is the schema descriptor for updated_at field.
	usertagDescUpdatedAt := usertagFields[2].Descriptor()
	// usertag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usertag.DefaultUpdatedAt = usertagDescUpdatedAt.Default.(func() time.Time)
	// usertag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usertag.UpdateDefaultUpdatedAt = usertagDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usertagDescText is the schema descriptor for text field.
	usertagDescText := usertagFields[3].Descriptor()
	// usertag.TextValidator is a validator for the "text" field. It is called by the builders before save.
	usertag.TextValidator = func() func(string) error {
		validators := usertagDescText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text string) error {
			for _, fn := range fns {
				if err := fn(text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usertagDescCount is the schema descriptor for count field.
	usertagDescCount := usertagFields[4].Descriptor()
	// usertag.DefaultCount holds the default value on creation for the count field.
	usertag.DefaultCount = usertagDescCount.Default.(int)
	// usertag.CountValidator is a validator for the "count" field. It is called by the builders before save.
	usertag.CountValidator = usertagDescCount.Validators[0].(func(int) error)
}

const (
	Version = "v0.14.4"                                         // Version of ent codegen.
	Sum     = "h1:/DhDraSLXIkBhyiVoJeSshr4ZYi7femzhj6/TckzZuI=" // Sum of ent codegen.
)
