package console

import (
	"context"
	"testing"

	"github.com/petmall-admin/internal/adminclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVIPAPI struct {
	levels  []adminclient.VIPLevel
	deleted []string
}

func (f *fakeVIPAPI) ListVIPLevels(context.Context) ([]adminclient.VIPLevel, error) {
	return append([]adminclient.VIPLevel(nil), f.levels...), nil
}

func (f *fakeVIPAPI) DeleteVIPLevel(_ context.Context, level adminclient.VIPLevel) error {
	f.deleted = append(f.deleted, level.ID)
	kept := f.levels[:0]
	for _, l := range f.levels {
		if l.ID != level.ID {
			kept = append(kept, l)
		}
	}
	f.levels = kept
	return nil
}

func TestVIPDeleteWithMembersNeverSends(t *testing.T) {
	api := &fakeVIPAPI{levels: []adminclient.VIPLevel{
		{ID: "gold", Name: "黄金会员", Level: 2, MemberCount: 4},
		{ID: "new", Name: "新手会员", Level: 1},
	}}
	confirmer := &scriptedConfirmer{answer: true}
	notes := &notifications{}
	panel := NewVIPPanel(api, confirmer, notes)
	ctx := context.Background()
	require.NoError(t, panel.Refresh(ctx))

	err := panel.Delete(ctx, "gold")
	var membersErr *adminclient.VIPMembersError
	require.ErrorAs(t, err, &membersErr)
	assert.Equal(t, []string{"该等级下还有 4 位会员，请先处理会员后再删除等级"}, notes.warnings)
	assert.Empty(t, confirmer.asked())
	assert.Empty(t, api.deleted)

	require.NoError(t, panel.Delete(ctx, "new"))
	assert.Equal(t, []string{"确定要删除这个会员等级吗？"}, confirmer.asked())
	assert.Equal(t, []string{"new"}, api.deleted)
	assert.Equal(t, []string{"会员等级删除成功"}, notes.success)
	assert.Len(t, panel.Levels(), 1)
}

type fakeProductAPI struct {
	result  *adminclient.ImportResult
	deleted []string
}

func (f *fakeProductAPI) ImportProducts(context.Context, []adminclient.ProductForm) (*adminclient.ImportResult, error) {
	return f.result, nil
}

func (f *fakeProductAPI) BatchDeleteProducts(_ context.Context, ids []string) (*adminclient.BatchDeleteResult, error) {
	f.deleted = append(f.deleted, ids...)
	return &adminclient.BatchDeleteResult{Deleted: int64(len(ids))}, nil
}

func TestImportDialogStaysOpenOnRowErrors(t *testing.T) {
	api := &fakeProductAPI{result: &adminclient.ImportResult{
		Message: "成功导入 1 个商品",
		Errors:  []string{"第 2 行: price 必须为数字"},
	}}
	notes := &notifications{}
	refreshed := 0
	dialog := NewImportDialog(api, notes, func(context.Context) error {
		refreshed++
		return nil
	})
	dialog.Open()

	rows := []adminclient.ProductForm{{Name: "猫粮", Price: "99"}, {Name: "狗粮", Price: "abc"}}
	_, err := dialog.Submit(context.Background(), rows)
	require.NoError(t, err)
	assert.True(t, dialog.IsOpen())
	assert.Equal(t, []string{"第 2 行: price 必须为数字"}, dialog.Errors())
	assert.Len(t, notes.warnings, 1)
	assert.Equal(t, []string{"成功导入 1 个商品"}, notes.success)
	assert.Equal(t, 1, refreshed)

	api.result = &adminclient.ImportResult{Message: "成功导入 2 个商品"}
	_, err = dialog.Submit(context.Background(), rows)
	require.NoError(t, err)
	assert.False(t, dialog.IsOpen())
	assert.Empty(t, dialog.Errors())
	assert.Equal(t, 2, refreshed)
}

func TestBatchDeleteRequiresSelectionAndConfirmation(t *testing.T) {
	api := &fakeProductAPI{}
	notes := &notifications{}
	ctx := context.Background()

	_, err := BatchDeleteProducts(ctx, api, &scriptedConfirmer{answer: true}, notes, nil)
	require.Error(t, err)

	_, err = BatchDeleteProducts(ctx, api, &scriptedConfirmer{answer: false}, notes, []string{"p1"})
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Empty(t, api.deleted)

	confirmer := &scriptedConfirmer{answer: true}
	result, err := BatchDeleteProducts(ctx, api, confirmer, notes, []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Deleted)
	assert.Equal(t, []string{"确定要删除选中的 2 个商品吗？"}, confirmer.asked())
	assert.Equal(t, []string{"成功删除 2 个商品"}, notes.success)
}
