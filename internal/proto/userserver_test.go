package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestServiceDescriptorMatchesBindings(t *testing.T) {
	sd := File_userserver_proto.Services().ByName("UserService")
	require.NotNil(t, sd)
	assert.Equal(t, protoreflect.FullName(UserService_ServiceDesc.ServiceName), sd.FullName())
	require.Equal(t, len(UserService_ServiceDesc.Methods), sd.Methods().Len())

	for i, m := range UserService_ServiceDesc.Methods {
		md := sd.Methods().Get(i)
		assert.Equal(t, m.MethodName, string(md.Name()))
		assert.Equal(t, string(md.Name())+"Request", string(md.Input().Name()))
		assert.Equal(t, string(md.Name())+"Response", string(md.Output().Name()))
	}
}

func TestUserIndexResponse_WireRoundTrip(t *testing.T) {
	in := &UserIndexResponse{
		Record: []*UserRecord{{Id: 1, Email: "a@b.com", Nickname: "neo", Gender: 2, Birthday: "1990-05-17 08:30:00"}},
		Meta:   &PaginationMeta{CurrentPage: 1, TotalPage: 1, Limit: 10, Total: 1},
	}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &UserIndexResponse{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.True(t, proto.Equal(in, out), "got %v", out)
	assert.Equal(t, "neo", out.GetRecord()[0].GetNickname())
}

func TestGetters_NilSafe(t *testing.T) {
	var r *UserShowResponse
	assert.Nil(t, r.GetUser())
	assert.Equal(t, int64(0), r.GetUser().GetId())

	var m *UserProfileUpdateResponse
	assert.Equal(t, "", m.GetBirthday())
}
