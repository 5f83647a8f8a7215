package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records the last input of each call and replays canned outputs.
// Scan and Query replay their pages in order.
type fakeDynamo struct {
	getIn    *dynamodb.GetItemInput
	getOut   *dynamodb.GetItemOutput
	putIn    *dynamodb.PutItemInput
	updateIn *dynamodb.UpdateItemInput
	updOut   *dynamodb.UpdateItemOutput
	queryIns []*dynamodb.QueryInput
	queries  []*dynamodb.QueryOutput
	scanIns  []*dynamodb.ScanInput
	scans    []*dynamodb.ScanOutput
	err      error
}

var _ dynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.err != nil {
		return nil, f.err
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.err != nil {
		return nil, f.err
	}
	if f.updOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIns = append(f.queryIns, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.queries) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queries[0]
	f.queries = f.queries[1:]
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIns = append(f.scanIns, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.scans) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	out := f.scans[0]
	f.scans = f.scans[1:]
	return out, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func nextPageKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}
