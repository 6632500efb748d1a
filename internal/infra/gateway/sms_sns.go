package gateway

import (
	"context"

	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/commands"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSMSGateway sends transactional SMS directly to a phone number.
type SNSSMSGateway struct {
	client   SNSPublisher
	senderID string
}

var _ commands.SMSGateway = (*SNSSMSGateway)(nil)

func NewSNSSMSGateway(client SNSPublisher, senderID string) *SNSSMSGateway {
	return &SNSSMSGateway{client: client, senderID: senderID}
}

func (g *SNSSMSGateway) Send(ctx context.Context, contactNumber, message string) error {
	attrs := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String("Transactional"),
		},
	}
	if g.senderID != "" {
		attrs["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(g.senderID),
		}
	}

	_, err := g.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(contactNumber),
		Message:           aws.String(message),
		MessageAttributes: attrs,
	})
	if err != nil {
		return errs.Wrap(err, "sns publish failed")
	}
	return nil
}
