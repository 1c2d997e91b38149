package repository

import (
	"context"
	"errors"
	"time"

	"rids_ngo/internal/domain/entities"
	"rids_ngo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDonationsTableName = "donations"
	donationsOrderIDIndex     = "razorpay_order_id-index"
)

type donationItem struct {
	ID                string  `dynamodbav:"id"`
	Name              string  `dynamodbav:"name"`
	Email             string  `dynamodbav:"email"`
	Phone             string  `dynamodbav:"phone"`
	Amount            float64 `dynamodbav:"amount"`
	Type              string  `dynamodbav:"type"`
	Status            string  `dynamodbav:"status"`
	RazorpayOrderID   string  `dynamodbav:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string  `dynamodbav:"razorpay_payment_id,omitempty"`
	RazorpaySignature string  `dynamodbav:"razorpay_signature,omitempty"`
	Error             string  `dynamodbav:"error,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
}

// DonationDynamoRepository persists Donation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: razorpay_order_id-index (PK: razorpay_order_id)
//
// Every status mutation is a single conditional UpdateItem; the condition is
// the only serialization between concurrent verification and webhook writers.

type DonationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDonationRepository = (*DonationDynamoRepository)(nil)

func NewDonationDynamoRepository(ddb *dynamodb.Client) *DonationDynamoRepository {
	return &DonationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONATIONS_TABLE", defaultDonationsTableName),
	}
}

func (r *DonationDynamoRepository) Create(ctx context.Context, d entities.Donation) (entities.Donation, error) {
	it := toDonationItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Donation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Donation{}, err
	}
	return d, nil
}

func (r *DonationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Donation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Donation{}, nil
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func (r *DonationDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Donation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(donationsOrderIDIndex),
		KeyConditionExpression: aws.String("razorpay_order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Donation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Donation{}, nil
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func (r *DonationDynamoRepository) AttachOrderID(ctx context.Context, id, orderID string) (entities.Donation, error) {
	return r.update(ctx, id,
		"attribute_exists(#id)",
		"SET #razorpay_order_id = :oid",
		map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		map[string]string{
			"#razorpay_order_id": "razorpay_order_id",
		},
		nil,
	)
}

// MarkCompleted transitions pending -> completed. An already-completed record
// is an idempotent no-op that returns the stored record; an already-failed
// record returns entities.ErrDonationStatusConflict without overwriting.
func (r *DonationDynamoRepository) MarkCompleted(ctx context.Context, id, paymentID, signature string) (entities.Donation, error) {
	expr := "SET #status = :status, #razorpay_payment_id = :pid"
	vals := map[string]types.AttributeValue{
		":status":  &types.AttributeValueMemberS{Value: string(entities.DonationStatusCompleted)},
		":pid":     &types.AttributeValueMemberS{Value: paymentID},
		":pending": &types.AttributeValueMemberS{Value: string(entities.DonationStatusPending)},
	}
	names := map[string]string{
		"#status":              "status",
		"#razorpay_payment_id": "razorpay_payment_id",
	}
	if signature != "" {
		expr += ", #razorpay_signature = :sig"
		vals[":sig"] = &types.AttributeValueMemberS{Value: signature}
		names["#razorpay_signature"] = "razorpay_signature"
	}

	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :pending",
		expr, vals, names,
		func(current entities.Donation) (entities.Donation, error) {
			if current.Status == entities.DonationStatusCompleted {
				return current, nil
			}
			return current, entities.ErrDonationStatusConflict
		},
	)
}

// MarkFailed transitions pending -> failed, mirroring MarkCompleted's
// idempotency and conflict rules.
func (r *DonationDynamoRepository) MarkFailed(ctx context.Context, id, diagnostic string) (entities.Donation, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :pending",
		"SET #status = :status, #error = :error",
		map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(entities.DonationStatusFailed)},
			":error":   &types.AttributeValueMemberS{Value: diagnostic},
			":pending": &types.AttributeValueMemberS{Value: string(entities.DonationStatusPending)},
		},
		map[string]string{
			"#status": "status",
			"#error":  "error",
		},
		func(current entities.Donation) (entities.Donation, error) {
			if current.Status == entities.DonationStatusFailed {
				return current, nil
			}
			return current, entities.ErrDonationStatusConflict
		},
	)
}

// OverrideStatus is the unguarded admin escape hatch for stuck records.
func (r *DonationDynamoRepository) OverrideStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error) {
	return r.update(ctx, id,
		"attribute_exists(#id)",
		"SET #status = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{
			"#status": "status",
		},
		nil,
	)
}

func (r *DonationDynamoRepository) List(ctx context.Context, status entities.DonationStatus, limit int32) ([]entities.Donation, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	donations := make([]entities.Donation, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it donationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			donations = append(donations, fromDonationItem(it))
		}
	}

	// Scan Limit applies before the filter, so the cap is enforced here.
	if limit > 0 && int32(len(donations)) > limit {
		donations = donations[:limit]
	}
	return donations, nil
}

// update performs a conditional UpdateItem. When the condition fails the
// current record is fetched and handed to onConflict (nil onConflict treats a
// failed condition as "not found" and returns the zero value).
func (r *DonationDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
	onConflict func(current entities.Donation) (entities.Donation, error),
) (entities.Donation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if onConflict == nil {
				return entities.Donation{}, nil
			}
			current, gerr := r.GetByID(ctx, id)
			if gerr != nil {
				return entities.Donation{}, gerr
			}
			if current.ID == "" {
				return entities.Donation{}, nil
			}
			return onConflict(current)
		}
		return entities.Donation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Donation{}, nil
	}

	var it donationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func toDonationItem(d entities.Donation) donationItem {
	return donationItem{
		ID:                d.ID,
		Name:              d.Name,
		Email:             d.Email,
		Phone:             d.Phone,
		Amount:            d.Amount,
		Type:              d.Type,
		Status:            string(d.Status),
		RazorpayOrderID:   d.RazorpayOrderID,
		RazorpayPaymentID: d.RazorpayPaymentID,
		RazorpaySignature: d.RazorpaySignature,
		Error:             d.Error,
		CreatedAt:         d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDonationItem(it donationItem) entities.Donation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Donation{
		ID:                it.ID,
		Name:              it.Name,
		Email:             it.Email,
		Phone:             it.Phone,
		Amount:            it.Amount,
		Type:              it.Type,
		Status:            entities.DonationStatus(it.Status),
		RazorpayOrderID:   it.RazorpayOrderID,
		RazorpayPaymentID: it.RazorpayPaymentID,
		RazorpaySignature: it.RazorpaySignature,
		Error:             it.Error,
		CreatedAt:         createdAt,
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
