package console

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderAPI struct {
	mu        sync.Mutex
	statuses  map[string]string
	order     []string
	queries   []adminclient.OrderQuery
	updates   []string
	updateErr error
	// onList 可替换本次返回的列表；返回 nil 时使用当前数据
	onList func(ctx context.Context, call int) ([]adminclient.Order, error)
}

func newFakeOrderAPI(orders ...adminclient.Order) *fakeOrderAPI {
	api := &fakeOrderAPI{statuses: map[string]string{}}
	for _, o := range orders {
		api.statuses[o.ID] = o.Status
		api.order = append(api.order, o.ID)
	}
	return api
}

func (f *fakeOrderAPI) ListOrders(ctx context.Context, q adminclient.OrderQuery) (*adminclient.Page[adminclient.Order], error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	call := len(f.queries)
	hook := f.onList
	f.mu.Unlock()
	if hook != nil {
		override, err := hook(ctx, call)
		if err != nil {
			return nil, err
		}
		if override != nil {
			return &adminclient.Page[adminclient.Order]{Items: override, Total: int64(len(override)), Page: 1, Size: q.Limit}, nil
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]adminclient.Order, 0, len(f.order))
	for _, id := range f.order {
		items = append(items, sampleOrder(id, f.statuses[id]))
	}
	return &adminclient.Page[adminclient.Order]{Items: items, Total: int64(len(items)), Page: 1, Size: q.Limit}, nil
}

func (f *fakeOrderAPI) GetOrder(_ context.Context, id string) (*adminclient.OrderDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status, ok := f.statuses[id]
	if !ok {
		return nil, &adminclient.APIError{StatusCode: 404, Detail: "Order not found"}
	}
	actions := toClientActions(lifecycle.OfferedActions(lifecycle.OrderStatus(status)))
	return &adminclient.OrderDetail{Order: sampleOrder(id, status), Actions: actions}, nil
}

func (f *fakeOrderAPI) UpdateOrderStatus(_ context.Context, id, status string) (*adminclient.OrderDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, id+"->"+status)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.statuses[id] = status
	return &adminclient.OrderDetail{Order: sampleOrder(id, status)}, nil
}

func (f *fakeOrderAPI) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeOrderAPI) lastQuery() adminclient.OrderQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func newOrderBoardForTest(t *testing.T, api *fakeOrderAPI, answer bool) (*OrderBoard, *scriptedConfirmer, *notifications) {
	t.Helper()
	confirmer := &scriptedConfirmer{answer: answer}
	notes := &notifications{}
	board := NewOrderBoard(api, confirmer, notes, Options{Debounce: 20 * time.Millisecond})
	t.Cleanup(board.Close)
	require.NoError(t, board.Refresh(context.Background()))
	return board, confirmer, notes
}

func TestTransitionPatchesThenRefetches(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "paid"), sampleOrder("o2", "pending"))
	board, confirmer, notes := newOrderBoardForTest(t, api, true)
	ctx := context.Background()
	_, err := board.OpenDetail(ctx, "o1")
	require.NoError(t, err)

	// 重新拉取发生时本地缓存已经是修补后的状态
	var seenDuringRefetch string
	api.onList = func(_ context.Context, _ int) ([]adminclient.Order, error) {
		seenDuringRefetch = board.State().Orders[0].Status
		return nil, nil
	}

	require.NoError(t, board.Transition(ctx, "o1", lifecycle.OrderShipped))

	assert.Equal(t, []string{"o1->shipped"}, api.updates)
	assert.Equal(t, []string{"确定要将订单状态更新为 已发货 吗？"}, confirmer.asked())
	assert.Equal(t, "shipped", seenDuringRefetch)
	assert.Equal(t, []string{"状态更新成功"}, notes.success)

	state := board.State()
	assert.Equal(t, "shipped", state.Orders[0].Status)
	assert.Equal(t, "已发货", state.Orders[0].StatusLabel)
	require.NotNil(t, state.Detail)
	assert.Equal(t, "shipped", state.Detail.Status)
	require.Len(t, state.Detail.Actions, 1)
	assert.Equal(t, "complete", state.Detail.Actions[0].Name)
}

func TestTransitionDeclinedSendsNothing(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "pending"))
	board, confirmer, _ := newOrderBoardForTest(t, api, false)

	err := board.Transition(context.Background(), "o1", lifecycle.OrderPaid)
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Len(t, confirmer.asked(), 1)
	assert.Empty(t, api.updates)
	assert.Equal(t, "pending", board.State().Orders[0].Status)
}

func TestTransitionNotOfferedIsRejectedLocally(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "completed"), sampleOrder("o2", "shipped"))
	board, confirmer, _ := newOrderBoardForTest(t, api, true)
	ctx := context.Background()

	assert.ErrorIs(t, board.Transition(ctx, "o1", lifecycle.OrderCancelled), ErrNotOffered)
	assert.ErrorIs(t, board.Transition(ctx, "o2", lifecycle.OrderCancelled), ErrNotOffered)
	assert.ErrorIs(t, board.Perform(ctx, "o2", lifecycle.ActionCancel), ErrNotOffered)
	assert.ErrorIs(t, board.Transition(ctx, "missing", lifecycle.OrderPaid), ErrNotLoaded)
	assert.Empty(t, confirmer.asked())
	assert.Empty(t, api.updates)
}

func TestTransitionFailureLeavesStateUntouched(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "pending"))
	api.updateErr = &adminclient.APIError{StatusCode: 400, Detail: "order status transition not allowed: cancelled -> paid"}
	board, _, notes := newOrderBoardForTest(t, api, true)
	listsBefore := api.listCount()

	err := board.Transition(context.Background(), "o1", lifecycle.OrderPaid)
	var apiErr *adminclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, api.updates, 1, "no retry")
	assert.Equal(t, listsBefore, api.listCount(), "no refetch on failure")
	assert.Equal(t, "pending", board.State().Orders[0].Status)
	assert.Equal(t, []string{"更新失败: order status transition not allowed: cancelled -> paid"}, notes.errorList())
}

func TestTransitionNetworkFailureMessage(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "paid"))
	api.updateErr = errors.Join(adminclient.ErrNetwork, errors.New("connection refused"))
	board, _, notes := newOrderBoardForTest(t, api, true)

	err := board.Transition(context.Background(), "o1", lifecycle.OrderCancelled)
	assert.ErrorIs(t, err, adminclient.ErrNetwork)
	assert.Equal(t, []string{"更新失败: 网络错误"}, notes.errorList())
	assert.Equal(t, "paid", board.State().Orders[0].Status)
}

func TestOfferedCancelOnlyBeforeShipping(t *testing.T) {
	api := newFakeOrderAPI(
		sampleOrder("p", "pending"),
		sampleOrder("d", "paid"),
		sampleOrder("s", "shipped"),
		sampleOrder("c", "completed"),
	)
	board, _, _ := newOrderBoardForTest(t, api, true)

	hasCancel := func(id string) bool {
		actions, err := board.Offered(id)
		require.NoError(t, err)
		for _, a := range actions {
			if a.Name == lifecycle.ActionCancel {
				return true
			}
		}
		return false
	}
	assert.True(t, hasCancel("p"))
	assert.True(t, hasCancel("d"))
	assert.False(t, hasCancel("s"))
	assert.False(t, hasCancel("c"))
}

func TestStaleListResponseIsDropped(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "pending"), sampleOrder("o2", "paid"))
	board, _, _ := newOrderBoardForTest(t, api, true)

	release := make(chan struct{})
	cancelled := make(chan struct{})
	api.onList = func(ctx context.Context, call int) ([]adminclient.Order, error) {
		switch call {
		case 2:
			select {
			case <-ctx.Done():
				close(cancelled)
			case <-time.After(time.Second):
			}
			<-release
			// 过期请求带回的是旧筛选条件下的另一页数据
			return []adminclient.Order{sampleOrder("stale", "pending")}, nil
		case 3:
			return []adminclient.Order{sampleOrder("o2", "paid")}, nil
		}
		return nil, nil
	}

	done := make(chan error, 1)
	go func() { done <- board.SetStatus(context.Background(), "pending") }()
	require.Eventually(t, func() bool { return api.listCount() == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, board.SetStatus(context.Background(), "paid"))
	<-cancelled
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, "paid", api.lastQuery().Status)
	state := board.State()
	assert.Equal(t, "paid", state.Filter.Status)
	assert.False(t, state.Loading)
	require.Len(t, state.Orders, 1)
	assert.Equal(t, "o2", state.Orders[0].ID, "the superseded page must not overwrite the newer one")
	assert.EqualValues(t, 1, state.Total)
}

func TestLoadSetsFilterAndPageInOneRequest(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "paid"))
	board, _, _ := newOrderBoardForTest(t, api, true)
	before := api.listCount()

	require.NoError(t, board.Load(context.Background(), OrderFilter{Status: "paid"}, 3))
	assert.Equal(t, before+1, api.listCount())
	q := api.lastQuery()
	assert.Equal(t, 20, q.Skip)
	assert.Equal(t, "paid", q.Status)
	assert.Equal(t, 3, board.State().Page)
}

func TestSearchIsDebouncedAndResetsPage(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "pending"))
	board, _, _ := newOrderBoardForTest(t, api, true)
	ctx := context.Background()
	require.NoError(t, board.SetPage(ctx, 3))
	before := api.listCount()
	assert.Equal(t, 20, api.lastQuery().Skip)

	board.Search(ctx, "O")
	board.Search(ctx, "OR")
	board.Search(ctx, "ORD-o1")
	assert.Equal(t, 1, board.State().Page)

	require.Eventually(t, func() bool { return api.listCount() == before+1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, before+1, api.listCount())
	q := api.lastQuery()
	assert.Equal(t, "ORD-o1", q.OrderNumber)
	assert.Equal(t, 0, q.Skip)
	assert.Equal(t, 10, q.Limit)
}

func TestFilterAllIsNotSent(t *testing.T) {
	api := newFakeOrderAPI(sampleOrder("o1", "pending"))
	board, _, _ := newOrderBoardForTest(t, api, true)
	require.NoError(t, board.SetStatus(context.Background(), "全部"))
	assert.Equal(t, "", api.lastQuery().Status)
}
