package awssm

import (
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"

	"github.com/apppass/apppass"
)

const (
	// Name of the store backend
	Name = "aws-secrets-manager"

	awsAccessKey       = "AWS_ACCESS_KEY_ID"
	awsSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	awsTokenKey        = "AWS_SESSION_TOKEN"
	awsRegionKey       = "AWS_REGION"
	// PrefixKey overrides the secret name prefix in the store config
	PrefixKey = "AWS_SM_PREFIX"

	defaultPrefix = "apppass/"
)

var (
	ErrAWSRegionNotProvided = errors.New("AWS region not provided. Cannot perform Secrets Manager operations.")
)

type awsStore struct {
	client *secretsmanager.SecretsManager
	prefix string
}

// New returns a Store backed by AWS Secrets Manager. Region and
// credentials resolve from the store config with environment
// fallback; absent static credentials defer to the default chain.
func New(
	storeConfig map[string]interface{},
) (apppass.Store, error) {
	region := getParam(storeConfig, awsRegionKey)
	if region == "" {
		return nil, ErrAWSRegionNotProvided
	}

	config := &aws.Config{
		Region: aws.String(region),
	}
	id := getParam(storeConfig, awsAccessKey)
	secret := getParam(storeConfig, awsSecretAccessKey)
	if id != "" && secret != "" {
		token := getParam(storeConfig, awsTokenKey)
		config.Credentials = credentials.NewStaticCredentials(id, secret, token)
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %v", err)
	}

	prefix := getParam(storeConfig, PrefixKey)
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &awsStore{
		client: secretsmanager.New(sess),
		prefix: prefix,
	}, nil
}

func (a *awsStore) String() string {
	return Name
}

func (a *awsStore) Set(key, value string) error {
	_, err := a.client.PutSecretValue(&secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(a.secretID(key)),
		SecretString: aws.String(value),
	})
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return err
	}
	_, err = a.client.CreateSecret(&secretsmanager.CreateSecretInput{
		Name:         aws.String(a.secretID(key)),
		SecretString: aws.String(value),
	})
	return err
}

func (a *awsStore) Get(key string) (string, error) {
	result, err := a.client.GetSecretValue(&secretsmanager.GetSecretValueInput{
		SecretId: aws.String(a.secretID(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return "", apppass.ErrNotFound
		}
		return "", err
	}
	if result.SecretString == nil {
		return "", apppass.ErrNotFound
	}
	return *result.SecretString, nil
}

func (a *awsStore) Delete(key string) error {
	// Force deletion so the name is immediately reusable; Secrets
	// Manager otherwise parks deleted secrets in a recovery window.
	_, err := a.client.DeleteSecret(&secretsmanager.DeleteSecretInput{
		SecretId:                   aws.String(a.secretID(key)),
		ForceDeleteWithoutRecovery: aws.Bool(true),
	})
	if err != nil {
		if isNotFound(err) {
			return apppass.ErrNotFound
		}
		return err
	}
	return nil
}

func (a *awsStore) secretID(key string) string {
	return a.prefix + key
}

func isNotFound(err error) bool {
	var awsErr awserr.Error
	return errors.As(err, &awsErr) &&
		awsErr.Code() == secretsmanager.ErrCodeResourceNotFoundException
}

func getParam(storeConfig map[string]interface{}, name string) string {
	if v, exists := storeConfig[name]; exists {
		valueStr, _ := v.(string)
		return valueStr
	}
	return os.Getenv(name)
}

func init() {
	if err := apppass.Register(Name, New); err != nil {
		panic(err.Error())
	}
}
